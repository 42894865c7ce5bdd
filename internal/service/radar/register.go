package radar

import (
	"google.golang.org/grpc"

	"github.com/oggyb/barchat/internal/app"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
)

// Registrar ties the Radar service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterRadarServer(s, NewRadarService(r.appCtx))
}
