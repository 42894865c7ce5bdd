package chat

import (
	"google.golang.org/grpc"

	"github.com/oggyb/barchat/internal/app"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
)

// Registrar ties the Chat service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Chat service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Chat service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterChatServer(s, NewChatService(r.appCtx))
}
