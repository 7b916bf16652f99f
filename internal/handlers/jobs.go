package handlers

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harukimoto/crm-dashboard-api/internal/dto"
	apierrors "github.com/harukimoto/crm-dashboard-api/internal/errors"
	"github.com/harukimoto/crm-dashboard-api/internal/identity"
	"github.com/harukimoto/crm-dashboard-api/internal/jobs"
	"go.uber.org/zap"
)

// JobsHandler is the scheduled-job gateway. It carries its own
// authorization rule and never touches user identity or memberships.
type JobsHandler struct {
	registry   *jobs.Registry
	cronSecret string
	log        *zap.Logger
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(registry *jobs.Registry, cronSecret string, log *zap.Logger) *JobsHandler {
	return &JobsHandler{
		registry:   registry,
		cronSecret: cronSecret,
		log:        log,
	}
}

// RunJob dispatches a named job. Authorization first, then input
// validation: a missing job name on an authorized request is a client
// error, not an authorization failure.
func (h *JobsHandler) RunJob(c *gin.Context) {
	if !h.authorized(c) {
		apierrors.Respond(c, apierrors.Unauthenticated("Unauthorized"))
		return
	}

	name := c.Query("job")
	if name == "" {
		apierrors.Respond(c, apierrors.InvalidArgument("Missing required query parameter 'job'"))
		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, jobs.ErrUnknownJob) {
			apierrors.Respond(c, apierrors.InvalidArgument(fmt.Sprintf("Unknown job %q", name)))
			return
		}
		h.log.Error("job dispatch failed", zap.String("job", name), zap.Error(err))
		apierrors.Respond(c, apierrors.Internal("Job dispatch failed"))
		return
	}

	c.JSON(http.StatusOK, dto.ToJobRunDTO(result))
}

// authorized applies the gateway rule: with a secret configured the
// request must present exactly "Bearer <secret>"; without one only
// loopback hosts get in, which keeps local testing workable and every
// other host shut out.
func (h *JobsHandler) authorized(c *gin.Context) bool {
	if h.cronSecret != "" {
		token, err := identity.ParseBearer(c.GetHeader("Authorization"))
		if err != nil {
			return false
		}
		return subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) == 1
	}
	return isLoopbackHost(c.Request.Host)
}

func isLoopbackHost(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	return ip != nil && ip.IsLoopback()
}
