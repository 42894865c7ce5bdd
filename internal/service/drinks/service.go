package drinks

import (
	"context"
	"fmt"

	"github.com/oggyb/barchat/internal/api"
	"github.com/oggyb/barchat/internal/app"
	"github.com/oggyb/barchat/internal/config"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
	pb "github.com/oggyb/barchat/internal/proto/barchat"
	"github.com/oggyb/barchat/internal/repository"
	"github.com/oggyb/barchat/internal/validation"
)

// MenuItem is a drink that can be gifted.
type MenuItem struct {
	Type  string
	Price float64
}

// Menu is what patrons can send each other.
var Menu = []MenuItem{
	{Type: "Beer", Price: 12.00},
	{Type: "Caipirinha", Price: 18.50},
	{Type: "Gin Tonic", Price: 24.90},
	{Type: "Wine", Price: 21.00},
	{Type: "Whisky", Price: 32.00},
	{Type: "Soda", Price: 6.50},
}

// Anonymous senders are shown to the recipient under this name.
const anonymousSender = "Anonymous"

// Service implements the Drinks gRPC API.
type Service struct {
	appCtx *app.AppContext
	drinks *repository.DrinkRepository

	pb.UnimplementedDrinksServer
}

func NewDrinksService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx, drinks: appCtx.Repos.Drinks}
}

func (s *Service) Menu(context.Context, *pb.MenuRequest) (*pb.MenuResponse, error) {
	resp := &pb.MenuResponse{Drinks: make([]*pb.MenuItem, 0, len(Menu))}
	for _, item := range Menu {
		resp.Drinks = append(resp.Drinks, &pb.MenuItem{Type: item.Type, Price: item.Price})
	}
	return resp, nil
}

// SendDrink offers a drink from the menu to another patron.
//
// Behavior:
//   - The drink type must be on the menu; its price is fixed at send time.
//   - The actions limiter is keyed by identity.
//   - The gift starts pending. Nothing is charged until it is accepted.
func (s *Service) SendDrink(ctx context.Context, req *pb.SendDrinkRequest) (*pb.SendDrinkResponse, error) {
	from := api.Identity(req.GetIdentity())
	to, toTable := req.GetToName(), req.GetToTable()
	s.appCtx.Logger.Debug("SendDrink called", "from", from.Name, "to", to, "drink", req.GetDrinkType())

	errs := validation.IdentityErrors(from)
	if to == "" {
		errs = append(errs, "recipient is required")
	}
	if len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}
	if to == from.Name && (toTable == "" || toTable == from.Table) {
		return nil, svcErr.Map(svcErr.Validation("cannot send a drink to yourself"))
	}
	item, ok := lookup(req.GetDrinkType())
	if !ok {
		return nil, svcErr.Map(svcErr.Validation(fmt.Sprintf("%q is not on the menu", req.GetDrinkType())))
	}

	if err := s.appCtx.Allow(ctx, config.LimiterActions, from.Key()); err != nil {
		return nil, svcErr.Map(err)
	}

	if toTable == "" {
		if dir, err := s.appCtx.Repos.Users.Directory(ctx); err == nil {
			toTable = dir[to].Table
		}
	}

	gift := model.DrinkGift{
		From:      from.Name,
		FromTable: from.Table,
		To:        to,
		ToTable:   toTable,
		DrinkType: item.Type,
		Price:     item.Price,
		Anonymous: req.GetAnonymous(),
		CreatedAt: s.appCtx.Now(),
	}
	id, err := s.drinks.Send(ctx, gift)
	if err != nil {
		s.appCtx.Logger.Error("send drink failed", "err", err)
		return nil, svcErr.Map(err)
	}
	gift.Status = model.GiftPending
	s.appCtx.Metrics.Drinks.WithLabelValues(string(model.GiftPending)).Inc()

	return &pb.SendDrinkResponse{Drink: toDrink(id, gift)}, nil
}

// RespondDrink accepts or declines a pending gift.
//
// Behavior:
//   - Only the recipient may answer → otherwise PermissionDenied.
//   - A gift is answered once → otherwise FailedPrecondition.
//   - On accept the price goes on the sender's tab. That is a second,
//     separate write: if it fails the gift stays accepted, the failure is
//     logged and SenderTab is left empty.
func (s *Service) RespondDrink(ctx context.Context, req *pb.RespondDrinkRequest) (*pb.RespondDrinkResponse, error) {
	by := api.Identity(req.GetIdentity())
	drinkID := req.GetDrinkId()
	s.appCtx.Logger.Debug("RespondDrink called", "by", by.Name, "drink", drinkID, "accept", req.GetAccept())

	errs := validation.IdentityErrors(by)
	if drinkID == "" {
		errs = append(errs, "drink id is required")
	}
	if len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}

	status := model.GiftDeclined
	if req.GetAccept() {
		status = model.GiftAccepted
	}

	now := s.appCtx.Now()
	gift, err := s.drinks.Resolve(ctx, drinkID, by.Name, status, now)
	if err != nil {
		s.appCtx.Logger.Warn("resolve drink refused", "drink", drinkID, "err", err)
		return nil, svcErr.Map(err)
	}
	s.appCtx.Metrics.Drinks.WithLabelValues(string(status)).Inc()

	resp := &pb.RespondDrinkResponse{Drink: toDrink(drinkID, gift)}
	if status == model.GiftAccepted {
		tab, err := s.drinks.Charge(ctx, gift.From, gift.FromTable, gift.Price, now)
		if err != nil {
			s.appCtx.Logger.Error("tab charge failed after accept", "drink", drinkID, "sender", gift.From, "err", err)
		} else {
			resp.SenderTab = toTab(tab)
		}
	}
	return resp, nil
}

// ListDrinks returns gifts received and sent by the caller. The sender of
// an anonymous incoming gift is hidden.
func (s *Service) ListDrinks(ctx context.Context, req *pb.ListDrinksRequest) (*pb.ListDrinksResponse, error) {
	who := api.Identity(req.GetIdentity())
	if errs := validation.IdentityErrors(who); len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}

	incoming, err := s.drinks.Incoming(ctx, who.Name)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	outgoing, err := s.drinks.Outgoing(ctx, who.Name)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListDrinksResponse{
		Incoming: make([]*pb.Drink, 0, len(incoming)),
		Outgoing: make([]*pb.Drink, 0, len(outgoing)),
	}
	for _, e := range incoming {
		gift := e.Data
		if gift.Anonymous {
			gift.From, gift.FromTable = anonymousSender, ""
		}
		resp.Incoming = append(resp.Incoming, toDrink(e.ID, gift))
	}
	for _, e := range outgoing {
		resp.Outgoing = append(resp.Outgoing, toDrink(e.ID, e.Data))
	}
	return resp, nil
}

func (s *Service) GetTab(ctx context.Context, req *pb.GetTabRequest) (*pb.GetTabResponse, error) {
	who := api.Identity(req.GetIdentity())
	if errs := validation.IdentityErrors(who); len(errs) > 0 {
		return nil, svcErr.Map(svcErr.Validation(errs...))
	}
	tab, err := s.drinks.Tab(ctx, who.Name, who.Table)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetTabResponse{Tab: toTab(tab)}, nil
}

func lookup(drinkType string) (MenuItem, bool) {
	for _, item := range Menu {
		if item.Type == drinkType {
			return item, true
		}
	}
	return MenuItem{}, false
}

func toDrink(id string, g model.DrinkGift) *pb.Drink {
	d := &pb.Drink{
		Id:              id,
		FromName:        g.From,
		ToName:          g.To,
		FromTable:       g.FromTable,
		ToTable:         g.ToTable,
		DrinkType:       g.DrinkType,
		Price:           g.Price,
		Anonymous:       g.Anonymous,
		Status:          string(g.Status),
		CreatedAtUnixMs: api.UnixMilli(g.CreatedAt),
	}
	if g.ResolvedAt != nil {
		d.ResolvedAtUnixMs = api.UnixMilli(*g.ResolvedAt)
	}
	return d
}

func toTab(t model.Tab) *pb.Tab {
	return &pb.Tab{
		Name:            t.Name,
		Table:           t.Table,
		Total:           t.Total,
		Drinks:          int32(t.Drinks),
		UpdatedAtUnixMs: api.UnixMilli(t.UpdatedAt),
	}
}
