package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const bookingServiceName = "shareit.booking.v1.BookingService"

// BookingServiceServer is the server API for the booking RPCs.
type BookingServiceServer interface {
	CreateBooking(context.Context, *CreateBookingRequest) (*BookingResponse, error)
	DecideBooking(context.Context, *DecideBookingRequest) (*BookingResponse, error)
	GetBooking(context.Context, *GetBookingRequest) (*BookingResponse, error)
	ListBookerBookings(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error)
	ListOwnerBookings(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error)
}

func unaryHandler[Req, Resp any](method string, call func(BookingServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	fullMethod := "/" + bookingServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BookingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BookingServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var BookingServiceDesc = grpc.ServiceDesc{
	ServiceName: bookingServiceName,
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateBooking", Handler: unaryHandler("CreateBooking", BookingServiceServer.CreateBooking)},
		{MethodName: "DecideBooking", Handler: unaryHandler("DecideBooking", BookingServiceServer.DecideBooking)},
		{MethodName: "GetBooking", Handler: unaryHandler("GetBooking", BookingServiceServer.GetBooking)},
		{MethodName: "ListBookerBookings", Handler: unaryHandler("ListBookerBookings", BookingServiceServer.ListBookerBookings)},
		{MethodName: "ListOwnerBookings", Handler: unaryHandler("ListOwnerBookings", BookingServiceServer.ListOwnerBookings)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterBookingServiceServer(s grpc.ServiceRegistrar, srv BookingServiceServer) {
	s.RegisterService(&BookingServiceDesc, srv)
}

// BookingServiceClient calls the booking RPCs using the JSON codec.
type BookingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBookingServiceClient(cc grpc.ClientConnInterface) *BookingServiceClient {
	return &BookingServiceClient{cc: cc}
}

func (c *BookingServiceClient) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+bookingServiceName+"/"+method, in, out, opts...)
}

func (c *BookingServiceClient) CreateBooking(ctx context.Context, in *CreateBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	out := new(BookingResponse)
	if err := c.invoke(ctx, "CreateBooking", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookingServiceClient) DecideBooking(ctx context.Context, in *DecideBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	out := new(BookingResponse)
	if err := c.invoke(ctx, "DecideBooking", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookingServiceClient) GetBooking(ctx context.Context, in *GetBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	out := new(BookingResponse)
	if err := c.invoke(ctx, "GetBooking", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookingServiceClient) ListBookerBookings(ctx context.Context, in *ListBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error) {
	out := new(ListBookingsResponse)
	if err := c.invoke(ctx, "ListBookerBookings", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookingServiceClient) ListOwnerBookings(ctx context.Context, in *ListBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error) {
	out := new(ListBookingsResponse)
	if err := c.invoke(ctx, "ListOwnerBookings", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
