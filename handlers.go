package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CreatePurchaseRequest representa a requisição para criar uma compra
type CreatePurchaseRequest struct {
	Customer  string `json:"customer" binding:"required"`
	ProductID int64  `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// ChatRequest representa a requisição do assistente
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// TransactionManager define a interface do núcleo transacional consumida
// pelo facade HTTP
type TransactionManager interface {
	CreatePurchase(ctx context.Context, customer string, productID int64, quantity int) (*Purchase, error)
	CancelPurchase(ctx context.Context, purchaseID int64) error
}

// ChatService define a interface do proxy de chat
type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Handler contém os handlers HTTP do serviço
type Handler struct {
	useCase TransactionManager
	queries QueryRepository
	chat    ChatService
	tracer  trace.Tracer

	purchasesCreated   metric.Int64Counter
	purchasesCancelled metric.Int64Counter
}

// NewHandler cria uma nova instância de Handler
func NewHandler(useCase TransactionManager, queries QueryRepository, chat ChatService, tracer trace.Tracer, meter metric.Meter) *Handler {
	purchasesCreated, _ := meter.Int64Counter("purchases.created")
	purchasesCancelled, _ := meter.Int64Counter("purchases.cancelled")

	return &Handler{
		useCase:            useCase,
		queries:            queries,
		chat:               chat,
		tracer:             tracer,
		purchasesCreated:   purchasesCreated,
		purchasesCancelled: purchasesCancelled,
	}
}

// statusFromError traduz cada tipo de erro do núcleo para exatamente uma
// família de status HTTP
func statusFromError(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrPurchaseNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, ErrPurchaseAlreadyCancelled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		// Falha de armazenamento: não vaza detalhes internos
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// CreatePurchase cria uma compra e decrementa o estoque
func (h *Handler) CreatePurchase(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_purchase")
	defer span.End()

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("customer", req.Customer),
		attribute.Int64("product_id", req.ProductID),
		attribute.Int("quantity", req.Quantity),
	)

	purchase, err := h.useCase.CreatePurchase(ctx, req.Customer, req.ProductID, req.Quantity)
	if err != nil {
		span.RecordError(err)
		abortWithError(c, err)
		return
	}

	h.purchasesCreated.Add(ctx, 1)
	span.SetAttributes(attribute.Int64("purchase_id", purchase.ID))

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Purchase created",
		"id":       purchase.ID,
		"purchase": purchase,
	})
}

// CancelPurchase cancela uma compra e devolve a quantidade ao estoque
func (h *Handler) CancelPurchase(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "cancel_purchase")
	defer span.End()

	purchaseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase id"})
		return
	}

	span.SetAttributes(attribute.Int64("purchase_id", purchaseID))

	if err := h.useCase.CancelPurchase(ctx, purchaseID); err != nil {
		span.RecordError(err)
		abortWithError(c, err)
		return
	}

	h.purchasesCancelled.Add(ctx, 1)
	c.JSON(http.StatusOK, gin.H{"message": "Purchase cancelled"})
}

// GetStats retorna os agregados do dashboard
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.queries.GetStats(c.Request.Context())
	if err != nil {
		log.Errorf("❌ [STATS] Failed: %v", err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListProducts lista os produtos com estoque
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.queries.ListProducts(c.Request.Context())
	if err != nil {
		log.Errorf("❌ [PRODUCTS] Failed: %v", err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListPurchases lista as compras mais recentes primeiro
func (h *Handler) ListPurchases(c *gin.Context) {
	purchases, err := h.queries.ListPurchases(c.Request.Context())
	if err != nil {
		log.Errorf("❌ [PURCHASES] Failed: %v", err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// ListMovements lista a trilha de auditoria de movimentações de estoque
func (h *Handler) ListMovements(c *gin.Context) {
	var productID int64
	if raw := c.Query("productId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		productID = parsed
	}

	movements, err := h.queries.ListMovements(c.Request.Context(), productID)
	if err != nil {
		log.Errorf("❌ [MOVEMENTS] Failed: %v", err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

// Chat encaminha a mensagem para o serviço de chat. A resposta nunca toca
// os ledgers e qualquer falha vira a resposta fixa de fallback.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), req.Message)
	if err != nil {
		log.Errorf("❌ AI Error: %v", err)
		c.JSON(http.StatusOK, gin.H{"reply": chatFallbackReply})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// HealthCheck verifica a saúde do serviço
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "inventory-service",
	})
}
