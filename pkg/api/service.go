package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "lightanalysis.v1.AnalysisService"

// AnalysisServiceServer is the server API for AnalysisService
type AnalysisServiceServer interface {
	StartAnalysis(context.Context, *StartAnalysisRequest) (*StartAnalysisResponse, error)
	GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error)
	GetCurrentLight(context.Context, *GetCurrentLightRequest) (*GetCurrentLightResponse, error)
	ListRecords(context.Context, *ListRecordsRequest) (*ListRecordsResponse, error)
	GetRecord(context.Context, *GetRecordRequest) (*GetRecordResponse, error)
	MatchPlant(context.Context, *MatchPlantRequest) (*MatchPlantResponse, error)
}

// UnimplementedAnalysisServiceServer can be embedded for forward compatibility
type UnimplementedAnalysisServiceServer struct{}

func (UnimplementedAnalysisServiceServer) StartAnalysis(context.Context, *StartAnalysisRequest) (*StartAnalysisResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartAnalysis not implemented")
}

func (UnimplementedAnalysisServiceServer) GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}

func (UnimplementedAnalysisServiceServer) GetCurrentLight(context.Context, *GetCurrentLightRequest) (*GetCurrentLightResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentLight not implemented")
}

func (UnimplementedAnalysisServiceServer) ListRecords(context.Context, *ListRecordsRequest) (*ListRecordsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRecords not implemented")
}

func (UnimplementedAnalysisServiceServer) GetRecord(context.Context, *GetRecordRequest) (*GetRecordResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRecord not implemented")
}

func (UnimplementedAnalysisServiceServer) MatchPlant(context.Context, *MatchPlantRequest) (*MatchPlantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MatchPlant not implemented")
}

// RegisterAnalysisServiceServer registers srv on s
func RegisterAnalysisServiceServer(s grpc.ServiceRegistrar, srv AnalysisServiceServer) {
	s.RegisterService(&AnalysisService_ServiceDesc, srv)
}

// unaryHandler adapts a typed method to the grpc.MethodDesc handler signature
func unaryHandler[Req any, Resp any](method string, call func(AnalysisServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AnalysisServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AnalysisServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// AnalysisService_ServiceDesc describes AnalysisService for grpc.Server
var AnalysisService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AnalysisServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("StartAnalysis", AnalysisServiceServer.StartAnalysis),
		unaryHandler("GetStatus", AnalysisServiceServer.GetStatus),
		unaryHandler("GetCurrentLight", AnalysisServiceServer.GetCurrentLight),
		unaryHandler("ListRecords", AnalysisServiceServer.ListRecords),
		unaryHandler("GetRecord", AnalysisServiceServer.GetRecord),
		unaryHandler("MatchPlant", AnalysisServiceServer.MatchPlant),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lightanalysis/v1/analysis.json",
}

// AnalysisServiceClient is the client API for AnalysisService
type AnalysisServiceClient interface {
	StartAnalysis(ctx context.Context, in *StartAnalysisRequest, opts ...grpc.CallOption) (*StartAnalysisResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error)
	GetCurrentLight(ctx context.Context, in *GetCurrentLightRequest, opts ...grpc.CallOption) (*GetCurrentLightResponse, error)
	ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error)
	GetRecord(ctx context.Context, in *GetRecordRequest, opts ...grpc.CallOption) (*GetRecordResponse, error)
	MatchPlant(ctx context.Context, in *MatchPlantRequest, opts ...grpc.CallOption) (*MatchPlantResponse, error)
}

type analysisServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAnalysisServiceClient creates a client that always uses the JSON codec
func NewAnalysisServiceClient(cc grpc.ClientConnInterface) AnalysisServiceClient {
	return &analysisServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysisServiceClient) StartAnalysis(ctx context.Context, in *StartAnalysisRequest, opts ...grpc.CallOption) (*StartAnalysisResponse, error) {
	return invoke[StartAnalysisResponse](ctx, c.cc, "StartAnalysis", in, opts)
}

func (c *analysisServiceClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	return invoke[GetStatusResponse](ctx, c.cc, "GetStatus", in, opts)
}

func (c *analysisServiceClient) GetCurrentLight(ctx context.Context, in *GetCurrentLightRequest, opts ...grpc.CallOption) (*GetCurrentLightResponse, error) {
	return invoke[GetCurrentLightResponse](ctx, c.cc, "GetCurrentLight", in, opts)
}

func (c *analysisServiceClient) ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error) {
	return invoke[ListRecordsResponse](ctx, c.cc, "ListRecords", in, opts)
}

func (c *analysisServiceClient) GetRecord(ctx context.Context, in *GetRecordRequest, opts ...grpc.CallOption) (*GetRecordResponse, error) {
	return invoke[GetRecordResponse](ctx, c.cc, "GetRecord", in, opts)
}

func (c *analysisServiceClient) MatchPlant(ctx context.Context, in *MatchPlantRequest, opts ...grpc.CallOption) (*MatchPlantResponse, error) {
	return invoke[MatchPlantResponse](ctx, c.cc, "MatchPlant", in, opts)
}
