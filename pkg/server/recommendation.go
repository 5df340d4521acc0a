package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/bufbuild/connect-go"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/auth"
	"droscher.com/BottleButler/pkg/integrations"
	"droscher.com/BottleButler/pkg/integrations/baxus"
	"droscher.com/BottleButler/pkg/model"
	"droscher.com/BottleButler/pkg/recommend"
	"droscher.com/BottleButler/pkg/repository"
	"droscher.com/BottleButler/pkg/server/grpc"
	api "droscher.com/BottleButler/pkg/server/grpc/api/v1"
)

var (
	ErrInvalidInput       = errors.New("bad request")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyCollection    = errors.New("collection is empty")
	ErrNoCandidates       = errors.New("no candidate bottles available")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

type BottleRepository interface {
	SaveBottles(ctx context.Context, bottles []model.Bottle) error
	GetBottleByID(ctx context.Context, id string) (*model.Bottle, error)
	FindCandidateBottles(ctx context.Context, excludeIDs []string, limit int) ([]model.Bottle, error)
}

type RecommendationServer struct {
	repository  BottleRepository
	catalog     integrations.Integration
	recommender *recommend.Recommender
	conf        *configs.Recommendations
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewRecommendationServer(
	repository BottleRepository,
	catalog integrations.Integration,
	recommender *recommend.Recommender,
	conf *configs.Recommendations,
	logger *zap.Logger,
) *RecommendationServer {
	return &RecommendationServer{
		repository:  repository,
		catalog:     catalog,
		recommender: recommender,
		conf:        conf,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

func (s *RecommendationServer) GetBar(
	_ context.Context,
	request *connect.Request[api.GetBarRequest],
) (*connect.Response[api.GetBarResponse], error) {
	if err := s.check(request.Msg); err != nil {
		return nil, err
	}

	bottles, err := s.fetchBar(request.Msg.GetUsername())
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetBarResponse{
		Username: request.Msg.GetUsername(),
		Bottles:  grpc.BottlesFromModel(bottles),
	}), nil
}

func (s *RecommendationServer) AnalyzeCollection(
	ctx context.Context,
	request *connect.Request[api.AnalyzeCollectionRequest],
) (*connect.Response[api.AnalyzeCollectionResponse], error) {
	if err := s.check(request.Msg); err != nil {
		return nil, err
	}

	username, err := s.username(ctx, request.Msg.GetUsername())
	if err != nil {
		return nil, err
	}

	owned, err := s.fetchBar(username)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.AnalyzeCollectionResponse{
		Username: username,
		Analysis: recommend.Analyze(owned),
		Report:   recommend.Report(owned),
	}), nil
}

func (s *RecommendationServer) GetRecommendations(
	ctx context.Context,
	request *connect.Request[api.GetRecommendationsRequest],
) (*connect.Response[api.GetRecommendationsResponse], error) {
	if err := s.check(request.Msg); err != nil {
		return nil, err
	}

	username, err := s.username(ctx, request.Msg.GetUsername())
	if err != nil {
		return nil, err
	}

	limit := int(request.Msg.GetLimit())
	if limit == 0 {
		limit = s.conf.Limit
	}

	owned, err := s.fetchBar(username)
	if err != nil {
		return nil, err
	}

	if len(owned) == 0 {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("%w: %s", ErrEmptyCollection, username))
	}

	ownedIDs := make([]string, 0, len(owned))
	for index := range owned {
		ownedIDs = append(ownedIDs, owned[index].ID)
	}

	candidates, err := s.repository.FindCandidateBottles(ctx, ownedIDs, s.conf.CandidatePool)
	if err != nil {
		s.logger.Error("error loading candidate bottles", zap.Error(err))

		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if len(candidates) == 0 {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrNoCandidates)
	}

	result := s.recommender.Recommend(ctx, owned, candidates, limit)

	return connect.NewResponse(&api.GetRecommendationsResponse{
		Username:        username,
		Strategy:        string(result.Strategy),
		Recommendations: grpc.RecommendationsFromModel(result.Recommendations),
	}), nil
}

func (s *RecommendationServer) GetBottle(
	ctx context.Context,
	request *connect.Request[api.GetBottleRequest],
) (*connect.Response[api.GetBottleResponse], error) {
	if err := s.check(request.Msg); err != nil {
		return nil, err
	}

	bottle, err := s.repository.GetBottleByID(ctx, request.Msg.GetId())
	if errors.Is(err, repository.ErrBottleNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	if err != nil {
		s.logger.Error("error loading bottle", zap.String("id", request.Msg.GetId()), zap.Error(err))

		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.GetBottleResponse{Bottle: grpc.BottleFromModel(bottle)}), nil
}

func (s *RecommendationServer) AddCandidates(
	ctx context.Context,
	request *connect.Request[api.AddCandidatesRequest],
) (*connect.Response[api.AddCandidatesResponse], error) {
	if err := s.check(request.Msg); err != nil {
		return nil, err
	}

	bottles := grpc.BottlesToModel(request.Msg.GetBottles())
	if err := s.repository.SaveBottles(ctx, bottles); err != nil {
		s.logger.Error("error saving candidate bottles", zap.Error(err))

		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("candidate bottles saved", zap.Int("count", len(bottles)))

	return connect.NewResponse(&api.AddCandidatesResponse{Saved: int32(len(bottles))}), nil
}

func (s *RecommendationServer) check(message any) error {
	if err := s.validate.Struct(message); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	return nil
}

// username prefers the explicit request value and falls back to the bar
// linked to the authenticated user.
func (s *RecommendationServer) username(ctx context.Context, requested string) (string, error) {
	if len(requested) > 0 {
		return requested, nil
	}

	if user, found := auth.UserFromContext(ctx); found && user.BaxusUserName != nil && len(*user.BaxusUserName) > 0 {
		return *user.BaxusUserName, nil
	}

	return "", connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: username is required", ErrInvalidInput))
}

func (s *RecommendationServer) fetchBar(username string) ([]model.Bottle, error) {
	bottles, err := s.catalog.FindBar(username)
	if errors.Is(err, baxus.ErrUserNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %s", ErrUserNotFound, username))
	}

	if err != nil {
		s.logger.Error("error fetching bar", zap.String("username", username), zap.Error(err))

		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err))
	}

	return bottles, nil
}
