package usecase

import (
	"fmt"
	"strings"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/usecase/crypto"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

func GetUserIDFromAuthHeader(tokenizer *crypto.Tokenizer, header string) (entity.UserID, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return entity.UserID(""), fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return entity.UserID(""), fmt.Errorf("first auth header part is invalid")
	}

	userID, err := tokenizer.GetUserID(headerParts[1])
	if err != nil {
		return entity.UserID(""), fmt.Errorf("error while getting user id from token: %w", err)
	}

	return userID, nil
}
