package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abdulq/chicken-shop/internal/httpx"
	"github.com/abdulq/chicken-shop/internal/order"
	"github.com/abdulq/chicken-shop/internal/referral"
)

// Mailer is the slice of internal/mail the handlers need; tests stub it.
type Mailer interface {
	SendOrderNotification(o *order.Order) error
	SendReferralInvite(to, link string) error
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "error": msg})
}

func failInternal(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Internal server error")
}

func submitOrderHandler(orders order.Repository, referrals referral.Repository, mailer Mailer, newCode referral.CodeFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		o := &order.Order{
			ID:              uuid.NewString(),
			CartItems:       req.CartItems,
			DeliveryAddress: req.DeliveryAddress,
			MobileNumber:    req.MobileNumber,
			AltMobileNumber: req.AltMobileNumber,
			PaymentMethod:   req.PaymentMethod,
			TotalPrice:      req.TotalPrice,
			Status:          order.StatusPending,
		}
		if err := orders.Create(c.Request.Context(), o); err != nil {
			log.Printf("[orders] rid=%s create %s: %v", httpx.RID(c), o.ID, err)
			failInternal(c)
			return
		}

		// Credit the referral that brought this customer in, if any.
		// The order is already placed, so a failure here is logged and
		// swallowed like the notification below.
		if req.ReferralCode != "" {
			if _, err := referrals.CompletePending(c.Request.Context(), req.ReferralCode, newCode()); err != nil {
				log.Printf("[referrals] rid=%s complete code %s: %v", httpx.RID(c), req.ReferralCode, err)
			}
		}

		if err := mailer.SendOrderNotification(o); err != nil {
			log.Printf("[mail] rid=%s order notification %s: %v", httpx.RID(c), o.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order placed successfully",
			"orderId": o.ID,
		})
	}
}

// listOrdersHandler serves both /orders/pending and /orders/all; an
// empty status means no filter.
func listOrdersHandler(orders order.Repository, status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.List(c.Request.Context(), status)
		if err != nil {
			log.Printf("[orders] rid=%s list status=%q: %v", httpx.RID(c), status, err)
			failInternal(c)
			return
		}
		if list == nil {
			list = []order.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": list})
	}
}

func acceptOrderHandler(orders order.Repository) gin.HandlerFunc {
	return transitionOrderHandler(orders, order.StatusPending, order.StatusAccepted,
		"Order accepted successfully", "Order cannot be accepted")
}

func rejectOrderHandler(orders order.Repository) gin.HandlerFunc {
	return transitionOrderHandler(orders, order.StatusPending, order.StatusRejected,
		"Order rejected successfully", "Order cannot be rejected")
}

func transitionOrderHandler(orders order.Repository, from, to, okMsg, stateMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderId")
		err := orders.Transition(c.Request.Context(), id, from, to)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": okMsg})
		case errors.Is(err, order.ErrNotFound):
			fail(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrInvalidState):
			fail(c, http.StatusBadRequest, stateMsg)
		default:
			log.Printf("[orders] rid=%s transition %s %s->%s: %v", httpx.RID(c), id, from, to, err)
			failInternal(c)
		}
	}
}

func deliverOrderHandler(orders order.Repository, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderId")
		err := orders.Deliver(c.Request.Context(), id, now())
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order marked as delivered successfully"})
		case errors.Is(err, order.ErrNotFound):
			fail(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrInvalidState):
			fail(c, http.StatusBadRequest, "Order must be accepted before marking as delivered")
		default:
			log.Printf("[orders] rid=%s deliver %s: %v", httpx.RID(c), id, err)
			failInternal(c)
		}
	}
}
