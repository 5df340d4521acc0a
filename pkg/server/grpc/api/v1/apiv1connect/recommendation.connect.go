package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	api "droscher.com/BottleButler/pkg/server/grpc/api/v1"
)

const RecommendationServiceName = "bottlebutler.v1.RecommendationService"

const (
	RecommendationServiceGetBarProcedure             = "/bottlebutler.v1.RecommendationService/GetBar"
	RecommendationServiceAnalyzeCollectionProcedure  = "/bottlebutler.v1.RecommendationService/AnalyzeCollection"
	RecommendationServiceGetRecommendationsProcedure = "/bottlebutler.v1.RecommendationService/GetRecommendations"
	RecommendationServiceGetBottleProcedure          = "/bottlebutler.v1.RecommendationService/GetBottle"
	RecommendationServiceAddCandidatesProcedure      = "/bottlebutler.v1.RecommendationService/AddCandidates"
)

type RecommendationServiceHandler interface {
	GetBar(context.Context, *connect.Request[api.GetBarRequest]) (*connect.Response[api.GetBarResponse], error)
	AnalyzeCollection(context.Context, *connect.Request[api.AnalyzeCollectionRequest]) (*connect.Response[api.AnalyzeCollectionResponse], error)
	GetRecommendations(context.Context, *connect.Request[api.GetRecommendationsRequest]) (*connect.Response[api.GetRecommendationsResponse], error)
	GetBottle(context.Context, *connect.Request[api.GetBottleRequest]) (*connect.Response[api.GetBottleResponse], error)
	AddCandidates(context.Context, *connect.Request[api.AddCandidatesRequest]) (*connect.Response[api.AddCandidatesResponse], error)
}

// NewRecommendationServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewRecommendationServiceHandler(svc RecommendationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(RecommendationServiceGetBarProcedure, connect.NewUnaryHandler(
		RecommendationServiceGetBarProcedure,
		svc.GetBar,
		opts...,
	))
	mux.Handle(RecommendationServiceAnalyzeCollectionProcedure, connect.NewUnaryHandler(
		RecommendationServiceAnalyzeCollectionProcedure,
		svc.AnalyzeCollection,
		opts...,
	))
	mux.Handle(RecommendationServiceGetRecommendationsProcedure, connect.NewUnaryHandler(
		RecommendationServiceGetRecommendationsProcedure,
		svc.GetRecommendations,
		opts...,
	))
	mux.Handle(RecommendationServiceGetBottleProcedure, connect.NewUnaryHandler(
		RecommendationServiceGetBottleProcedure,
		svc.GetBottle,
		opts...,
	))
	mux.Handle(RecommendationServiceAddCandidatesProcedure, connect.NewUnaryHandler(
		RecommendationServiceAddCandidatesProcedure,
		svc.AddCandidates,
		opts...,
	))

	return "/" + RecommendationServiceName + "/", mux
}

type RecommendationServiceClient interface {
	GetBar(context.Context, *connect.Request[api.GetBarRequest]) (*connect.Response[api.GetBarResponse], error)
	AnalyzeCollection(context.Context, *connect.Request[api.AnalyzeCollectionRequest]) (*connect.Response[api.AnalyzeCollectionResponse], error)
	GetRecommendations(context.Context, *connect.Request[api.GetRecommendationsRequest]) (*connect.Response[api.GetRecommendationsResponse], error)
	GetBottle(context.Context, *connect.Request[api.GetBottleRequest]) (*connect.Response[api.GetBottleResponse], error)
	AddCandidates(context.Context, *connect.Request[api.AddCandidatesRequest]) (*connect.Response[api.AddCandidatesResponse], error)
}

func NewRecommendationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RecommendationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &recommendationServiceClient{
		getBar:             connect.NewClient[api.GetBarRequest, api.GetBarResponse](httpClient, baseURL+RecommendationServiceGetBarProcedure, opts...),
		analyzeCollection:  connect.NewClient[api.AnalyzeCollectionRequest, api.AnalyzeCollectionResponse](httpClient, baseURL+RecommendationServiceAnalyzeCollectionProcedure, opts...),
		getRecommendations: connect.NewClient[api.GetRecommendationsRequest, api.GetRecommendationsResponse](httpClient, baseURL+RecommendationServiceGetRecommendationsProcedure, opts...),
		getBottle:          connect.NewClient[api.GetBottleRequest, api.GetBottleResponse](httpClient, baseURL+RecommendationServiceGetBottleProcedure, opts...),
		addCandidates:      connect.NewClient[api.AddCandidatesRequest, api.AddCandidatesResponse](httpClient, baseURL+RecommendationServiceAddCandidatesProcedure, opts...),
	}
}

type recommendationServiceClient struct {
	getBar             *connect.Client[api.GetBarRequest, api.GetBarResponse]
	analyzeCollection  *connect.Client[api.AnalyzeCollectionRequest, api.AnalyzeCollectionResponse]
	getRecommendations *connect.Client[api.GetRecommendationsRequest, api.GetRecommendationsResponse]
	getBottle          *connect.Client[api.GetBottleRequest, api.GetBottleResponse]
	addCandidates      *connect.Client[api.AddCandidatesRequest, api.AddCandidatesResponse]
}

func (c *recommendationServiceClient) GetBar(ctx context.Context, req *connect.Request[api.GetBarRequest]) (*connect.Response[api.GetBarResponse], error) {
	return c.getBar.CallUnary(ctx, req)
}

func (c *recommendationServiceClient) AnalyzeCollection(ctx context.Context, req *connect.Request[api.AnalyzeCollectionRequest]) (*connect.Response[api.AnalyzeCollectionResponse], error) {
	return c.analyzeCollection.CallUnary(ctx, req)
}

func (c *recommendationServiceClient) GetRecommendations(ctx context.Context, req *connect.Request[api.GetRecommendationsRequest]) (*connect.Response[api.GetRecommendationsResponse], error) {
	return c.getRecommendations.CallUnary(ctx, req)
}

func (c *recommendationServiceClient) GetBottle(ctx context.Context, req *connect.Request[api.GetBottleRequest]) (*connect.Response[api.GetBottleResponse], error) {
	return c.getBottle.CallUnary(ctx, req)
}

func (c *recommendationServiceClient) AddCandidates(ctx context.Context, req *connect.Request[api.AddCandidatesRequest]) (*connect.Response[api.AddCandidatesResponse], error) {
	return c.addCandidates.CallUnary(ctx, req)
}

type UnimplementedRecommendationServiceHandler struct{}

func (UnimplementedRecommendationServiceHandler) GetBar(context.Context, *connect.Request[api.GetBarRequest]) (*connect.Response[api.GetBarResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("bottlebutler.v1.RecommendationService.GetBar is not implemented"))
}

func (UnimplementedRecommendationServiceHandler) AnalyzeCollection(context.Context, *connect.Request[api.AnalyzeCollectionRequest]) (*connect.Response[api.AnalyzeCollectionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("bottlebutler.v1.RecommendationService.AnalyzeCollection is not implemented"))
}

func (UnimplementedRecommendationServiceHandler) GetRecommendations(context.Context, *connect.Request[api.GetRecommendationsRequest]) (*connect.Response[api.GetRecommendationsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("bottlebutler.v1.RecommendationService.GetRecommendations is not implemented"))
}

func (UnimplementedRecommendationServiceHandler) GetBottle(context.Context, *connect.Request[api.GetBottleRequest]) (*connect.Response[api.GetBottleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("bottlebutler.v1.RecommendationService.GetBottle is not implemented"))
}

func (UnimplementedRecommendationServiceHandler) AddCandidates(context.Context, *connect.Request[api.AddCandidatesRequest]) (*connect.Response[api.AddCandidatesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("bottlebutler.v1.RecommendationService.AddCandidates is not implemented"))
}
