package token

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/converter"
	"github.com/avGenie/go-checkout-system/internal/app/usecase/crypto"
)

type Parser struct {
	tokenizer *crypto.Tokenizer
}

func NewParser(tokenizer *crypto.Tokenizer) *Parser {
	return &Parser{
		tokenizer: tokenizer,
	}
}

func (p *Parser) TokenParserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header[usecase.AuthHeader]
		userCtx := p.processAuthUserID(authHeader)

		ctx := context.WithValue(r.Context(), entity.UserIDCtxKey{}, userCtx)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (p *Parser) processAuthUserID(authHeader []string) entity.UserIDCtx {
	if len(authHeader) == 0 {
		zap.L().Debug("authorization header is empty")

		return entity.CreateUserIDCtx("", http.StatusUnauthorized)
	}

	userID, err := usecase.GetUserIDFromAuthHeader(p.tokenizer, authHeader[0])
	if err != nil {
		// header holds a bearer token, never log it
		zap.L().Info("error while parsing auth header", zap.Error(err))

		return entity.CreateUserIDCtx("", http.StatusUnauthorized)
	}

	if !userID.Valid() {
		zap.L().Info("invalid user id in authorization header")

		return entity.CreateUserIDCtx("", http.StatusBadRequest)
	}

	return entity.CreateUserIDCtx(userID, http.StatusOK)
}
