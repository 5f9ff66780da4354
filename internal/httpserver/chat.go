package httpserver

import (
	"context"

	chatHTTP "travel-assistant/internal/chat/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupChatDomain registers /api/v1/sessions.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
