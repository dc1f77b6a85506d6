package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/weiawesome/rowid/internal/domain"
	"github.com/weiawesome/rowid/internal/generator"
	"github.com/weiawesome/rowid/pkg/log"
	"github.com/weiawesome/rowid/pkg/response"
)

// Handler handles HTTP requests for the rowid service.
type Handler struct {
	gen generator.Generator
}

// NewHandler creates a new HTTP handler.
func NewHandler(gen generator.Generator) *Handler {
	return &Handler{gen: gen}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		ids := api.Group("/ids")
		{
			ids.GET("", h.NewID)
			ids.POST("", h.GenerateID)
			ids.POST("/batch", h.GenerateBatch)
			ids.GET("/:id/verify", h.VerifyID)
			ids.GET("/:id/validate", h.ValidateID)
			ids.GET("/:id/parse", h.ParseID)
		}
		api.GET("/encode", h.Encode)
		api.GET("/randomness", h.Randomness)
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
}

// NewID returns an ID for the current time with the default configuration.
func (h *Handler) NewID(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	id, err := h.gen.Generate()
	if err != nil {
		l.Error().Err(err).Msg("failed to generate id")
		response.InternalError(c, "failed to generate id")
		return
	}

	response.Success(c, domain.IDResponse{ID: id})
}

// GenerateID returns an ID for an optional timestamp and randomness length.
func (h *Handler) GenerateID(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind generate request")
		response.BadRequest(c, err.Error())
		return
	}

	l = log.Ctx(log.WithTimestamp(c.Request.Context(), req.TimestampMs))
	res := h.gen.GenerateAt(req.TimestampMs, req.RandomnessLength)
	if !res.Success {
		h.fail(c, l, res.Err, "failed to generate id")
		return
	}

	response.Created(c, domain.IDResponse{ID: res.Result})
}

// GenerateBatch returns count IDs for the current time.
func (h *Handler) GenerateBatch(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	var req domain.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind batch request")
		response.BadRequest(c, err.Error())
		return
	}

	ids, err := h.gen.GenerateBatch(req.Count)
	if err != nil {
		h.fail(c, l, err, "failed to generate batch")
		return
	}

	l.Debug().Int(log.FieldCount, len(ids)).Msg("batch generated")
	response.Created(c, domain.BatchResponse{IDs: ids})
}

// VerifyID decodes the ID's timestamp and reports whether it is natural.
// Undecodable IDs are a successful request with valid=false.
func (h *Handler) VerifyID(c *gin.Context) {
	id := c.Param("id")
	res := h.gen.Verify(id)
	if !res.Success {
		l := log.Ctx(log.WithID(c.Request.Context(), id))
		l.Debug().Err(res.Err).Msg("id failed verification")
	}

	response.Success(c, domain.NewVerifyResponse(res))
}

// ValidateID reports whether the ID decodes and is not from the future.
func (h *Handler) ValidateID(c *gin.Context) {
	id := c.Param("id")
	valid, reason := h.gen.Validate(id)
	if !valid {
		l := log.Ctx(log.WithID(c.Request.Context(), id))
		l.Debug().Str(log.FieldReason, reason).Msg("id failed validation")
	}

	response.Success(c, domain.ValidateResponse{Valid: valid, Reason: reason})
}

// ParseID returns the components of an ID.
func (h *Handler) ParseID(c *gin.Context) {
	id := c.Param("id")
	l := log.Ctx(log.WithID(c.Request.Context(), id))

	res, err := h.gen.Parse(id)
	if err != nil {
		h.fail(c, l, err, "failed to parse id")
		return
	}

	response.Success(c, domain.NewParseResponse(res))
}

// Encode returns the timestamp prefix for timestamp_ms.
func (h *Handler) Encode(c *gin.Context) {
	var req domain.EncodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	l := log.Ctx(log.WithTimestamp(c.Request.Context(), req.TimestampMs))
	encoded, err := h.gen.Encode(*req.TimestampMs)
	if err != nil {
		h.fail(c, l, err, "failed to encode timestamp")
		return
	}

	response.Success(c, domain.EncodeResponse{Encoded: encoded, TimestampMs: *req.TimestampMs})
}

// Randomness returns length random characters from the alphabet.
func (h *Handler) Randomness(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	var req domain.RandomnessRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	s, err := h.gen.Randomness(*req.Length)
	if err != nil {
		h.fail(c, l, err, "failed to generate randomness")
		return
	}

	response.Success(c, domain.RandomnessResponse{Randomness: s})
}

func (h *Handler) fail(c *gin.Context, l zerolog.Logger, err error, msg string) {
	if domain.IsInvalidInput(err) {
		response.InvalidArgument(c, domain.ErrorCode(err), err.Error())
		return
	}
	l.Error().Err(err).Msg(msg)
	response.InternalError(c, msg)
}
