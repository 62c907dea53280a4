package main

import (
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abdulq/chicken-shop/internal/httpx"
	"github.com/abdulq/chicken-shop/internal/referral"
)

// TODO: replace with the authenticated user's id once the storefront
// grows a login flow.
const referrerPlaceholder = "mockUser123"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type sendReferralRequest struct {
	FriendEmail  string `json:"friendEmail"`
	ReferralLink string `json:"referralLink"`
}

func sendReferralHandler(referrals referral.Repository, mailer Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendReferralRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if !emailRe.MatchString(req.FriendEmail) {
			fail(c, http.StatusBadRequest, "Invalid email address")
			return
		}
		code, err := referral.CodeFromLink(req.ReferralLink)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid referral link")
			return
		}

		ref := &referral.Referral{
			ID:            uuid.NewString(),
			ReferrerID:    referrerPlaceholder,
			ReferralCode:  code,
			ReferredEmail: req.FriendEmail,
			Status:        referral.StatusPending,
			Reward:        referral.DefaultReward,
		}
		if err := referrals.Create(c.Request.Context(), ref); err != nil {
			log.Printf("[referrals] rid=%s create %s: %v", httpx.RID(c), ref.ID, err)
			failInternal(c)
			return
		}

		// Same policy as the order notification: the record is already
		// persisted, a transport failure does not fail the request.
		if err := mailer.SendReferralInvite(req.FriendEmail, req.ReferralLink); err != nil {
			log.Printf("[mail] rid=%s referral invite to %s: %v", httpx.RID(c), req.FriendEmail, err)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Referral email sent successfully"})
	}
}

func listRewardsHandler(referrals referral.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := referrals.List(c.Request.Context())
		if err != nil {
			log.Printf("[referrals] rid=%s list: %v", httpx.RID(c), err)
			failInternal(c)
			return
		}
		if list == nil {
			list = []referral.Referral{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "rewards": list})
	}
}

func claimRewardHandler(referrals referral.Repository, newCode referral.CodeFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("rewardId")
		code := newCode()
		err := referrals.Claim(c.Request.Context(), id, code)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{
				"success":      true,
				"message":      "Reward claimed successfully",
				"discountCode": code,
			})
		case errors.Is(err, referral.ErrNotFound):
			fail(c, http.StatusNotFound, "Referral not found")
		case errors.Is(err, referral.ErrNotCompleted):
			fail(c, http.StatusBadRequest, "Reward cannot be claimed yet")
		case errors.Is(err, referral.ErrAlreadyClaimed):
			fail(c, http.StatusBadRequest, "Reward already claimed")
		default:
			log.Printf("[referrals] rid=%s claim %s: %v", httpx.RID(c), id, err)
			failInternal(c)
		}
	}
}
