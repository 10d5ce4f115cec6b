package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heraldhq/herald/internal/herald/service"
	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/httpx"
	"github.com/heraldhq/herald/pkg/jwtx"
	"github.com/heraldhq/herald/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	UserService         *service.UserService
	TokenService        *service.TokenService
	NotificationService *service.NotificationService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerNotifications()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// resolveIdentity adapts the user store to the authentication
// middleware. A token whose subject no longer resolves is treated as
// unauthenticated.
func (r *Router) resolveIdentity(ctx context.Context, userID string) (httpx.Identity, bool) {
	user, err := r.UserService.GetUserByID(ctx, userID)
	if err != nil {
		return httpx.Identity{}, false
	}
	return httpx.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, true
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, r.resolveIdentity)
}

func (r *Router) registerAuth() {
	signupHandler := &SignupHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	loginHandler := &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}

	// Credential endpoints take authentication attempts, so both are
	// strictly limited by IP.
	r.Mux.Handle("POST /signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	verifyHandler := &VerifyHandler{UserService: r.UserService}
	r.Mux.Handle("GET /verify",
		httpx.Chain(verifyHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{UserService: r.UserService}

	r.Mux.Handle("PUT /profile",
		httpx.Chain(h,
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerNotifications() {
	sendHandler := &SendNotificationHandler{NotificationService: r.NotificationService}
	listHandler := &ListNotificationsHandler{NotificationService: r.NotificationService}

	r.Mux.Handle("POST /notifications",
		httpx.Chain(sendHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /notifications",
		httpx.Chain(listHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Broadcast reuses the send path; only the admin gate differs.
	r.Mux.Handle("POST /admin/notifications",
		httpx.Chain(sendHandler,
			r.authn(),
			httpx.RequireAdmin(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
