package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	connect_go "github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"gorm.io/gorm"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/model"
)

type UserKey struct{}

type UserRepository interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   *configs.Auth
	repo   UserRepository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Auth, repo UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// UserFromContext returns the user the interceptor attached to the context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, found := ctx.Value(UserKey{}).(*model.User)

	return user, found && user != nil
}

func (a *Manager) GrpcAuthInterceptor() connect_go.UnaryInterceptorFunc {
	return func(next connect_go.UnaryFunc) connect_go.UnaryFunc {
		return func(ctx context.Context, req connect_go.AnyRequest) (connect_go.AnyResponse, error) {
			user, err := a.authenticate(ctx, req.Header())
			if err != nil {
				return nil, err
			}

			ctx = context.WithValue(ctx, UserKey{}, user)

			return next(ctx, req)
		}
	}
}

func (a *Manager) authenticate(ctx context.Context, header http.Header) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, rpcError(codes.Unauthenticated, "error parsing token: %v", err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return nil, rpcError(codes.Unauthenticated, "invalid token")
	}

	if len(a.conf.Audience) > 0 && !claims.VerifyAudience(a.conf.Audience, true) {
		a.logger.Error("unexpected token audience", zap.Any("claims", claims))

		return nil, rpcError(codes.Unauthenticated, "invalid token audience")
	}

	if len(a.conf.Domain) > 0 && !claims.VerifyIssuer(a.conf.Domain, true) {
		a.logger.Error("unexpected token issuer", zap.Any("claims", claims))

		return nil, rpcError(codes.Unauthenticated, "invalid token issuer")
	}

	email, found := claims["email"].(string)
	if !found {
		a.logger.Error("unable to get user id from token", zap.Any("claims", claims))

		return nil, rpcError(codes.Unauthenticated, "unable to get user id from token")
	}

	user, err := a.repo.GetUserFromEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && user == nil) {
		return nil, rpcError(codes.NotFound, "user not found")
	}

	if err != nil {
		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, rpcError(codes.Internal, "error authenticating user")
	}

	a.logger.Debug("authenticated user", zap.String("email", email))

	return user, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, rpcError(codes.Unauthenticated, "authorization header not found")
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, rpcError(codes.Unauthenticated, "authorization format must be Bearer {token}")
	}

	return &token, nil
}

// connect and gRPC share status code numbering.
func rpcError(code codes.Code, format string, args ...any) error {
	return connect_go.NewError(connect_go.Code(code), fmt.Errorf(format, args...))
}
