package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abdulq/chicken-shop/internal/config"
	"github.com/abdulq/chicken-shop/internal/httpx"
	"github.com/abdulq/chicken-shop/internal/mail"
	"github.com/abdulq/chicken-shop/internal/order"
	"github.com/abdulq/chicken-shop/internal/referral"
	"github.com/abdulq/chicken-shop/internal/store"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[store] connect: %v", err)
	}
	defer pool.Close()

	mailer := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.OwnerEmail)
	if err := mailer.Ping(); err != nil {
		log.Printf("[mail] SMTP verification failed: %v", err)
	} else {
		log.Printf("[mail] SMTP transport ready")
	}

	orders := order.NewPGRepo(pool)
	referrals := referral.NewPGRepo(pool)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api")
	api.POST("/orders", submitOrderHandler(orders, referrals, mailer, referral.NewDiscountCode))
	api.GET("/orders/pending", listOrdersHandler(orders, order.StatusPending))
	api.GET("/orders/all", listOrdersHandler(orders, ""))
	api.POST("/orders/:orderId/accept", acceptOrderHandler(orders))
	api.POST("/orders/:orderId/reject", rejectOrderHandler(orders))
	api.POST("/orders/:orderId/deliver", deliverOrderHandler(orders, time.Now))
	api.POST("/referrals/send", sendReferralHandler(referrals, mailer))
	api.GET("/rewards", listRewardsHandler(referrals))
	api.POST("/rewards/claim/:rewardId", claimRewardHandler(referrals, referral.NewDiscountCode))

	srv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		log.Printf("shop-api listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] listen: %v", err)
		}
	}()

	<-ctx.Done()
	stop()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown: %v", err)
	}
}
