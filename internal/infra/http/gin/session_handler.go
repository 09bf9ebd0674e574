package ginserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vanbook/internal/app/dto"
	"vanbook/internal/app/session"
	"vanbook/internal/domain/availability"
	"vanbook/internal/domain/booking"
	"vanbook/internal/domain/pricing"
	"vanbook/internal/domain/shared/dateonly"
	"vanbook/internal/infra/catalog"
)

// CatalogPort is the upstream read surface a new session needs.
type CatalogPort interface {
	Unit(ctx context.Context, unitID string) (dto.Unit, error)
	Availability(ctx context.Context, unitID string) (*availability.Set, error)
}

// SessionRegistry stores live sessions between requests.
type SessionRegistry interface {
	Put(s *session.Session)
	Get(id string) (*session.Session, bool)
}

type SessionHandler struct {
	Catalog     CatalogPort
	Store       SessionRegistry
	Coordinator *session.Coordinator
	Calculator  pricing.Calculator
	Logger      *slog.Logger
}

type createSessionRequest struct {
	UnitID string `json:"unit_id" binding:"required"`
}

func (h SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	unit, err := h.Catalog.Unit(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, catalog.ErrUnitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	busy, err := h.Catalog.Availability(ctx, req.UnitID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	sess := session.New(uuid.NewString(), unit, busy, h.Calculator)
	h.Store.Put(sess)
	if h.Logger != nil {
		h.Logger.Info("session created", "session_id", sess.ID(), "unit_id", unit.ID)
	}
	c.JSON(http.StatusCreated, sess.Snapshot())
}

func (h SessionHandler) Get(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

type tapRequest struct {
	Date string `json:"date" binding:"required"`
}

// Tap never rejects an unwanted date with an error status: absorbed and
// re-anchored taps are ordinary outcomes and come back as a 200 snapshot.
func (h SessionHandler) Tap(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req tapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := dateonly.Parse(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess.Tap(d))
}

type contactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PickupLocation string `json:"pickup_location"`
	Notes          string `json:"notes"`
}

func (h SessionHandler) UpdateContact(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap := sess.UpdateContact(booking.ContactInfo{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PickupLocation: req.PickupLocation,
		Notes:          req.Notes,
	})
	c.JSON(http.StatusOK, snap)
}

func (h SessionHandler) Submit(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := h.Coordinator.Submit(c.Request.Context(), sess)
	if err != nil {
		h.blocked(c, snap, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h SessionHandler) WhatsAppLink(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	link, err := h.Coordinator.WhatsAppLink(sess)
	if err != nil {
		h.blocked(c, sess.Snapshot(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}

func (h SessionHandler) session(c *gin.Context) (*session.Session, bool) {
	sess, ok := h.Store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return nil, false
	}
	return sess, true
}

// blocked answers a gated submission attempt: 409 with the distinct reason so
// the rendering layer can point at the calendar, the stay or the form.
func (h SessionHandler) blocked(c *gin.Context, snap dto.SessionSnapshot, err error) {
	c.JSON(http.StatusConflict, gin.H{
		"reason":       session.BlockReason(err),
		"field_errors": snap.FieldErrors,
		"session":      snap,
	})
}

var _ SessionHTTP = SessionHandler{}
