package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "staff-leave-portal/internal/adapter/http"
	appmw "staff-leave-portal/internal/adapter/middleware"
	"staff-leave-portal/internal/adapter/repository/mysql"
	"staff-leave-portal/internal/config"
	"staff-leave-portal/internal/domain/leave"
	"staff-leave-portal/internal/domain/notification"
	"staff-leave-portal/internal/domain/user"
	"staff-leave-portal/internal/infrastructure/cache"
	"staff-leave-portal/internal/infrastructure/db"
	"staff-leave-portal/internal/mailer"
	authUC "staff-leave-portal/internal/usecase/auth"
	leaveUC "staff-leave-portal/internal/usecase/leave"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&user.User{}, &leave.LeaveRequest{}, &notification.Notification{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	mail := mailer.New(cfg.MailerProvider, mailer.Config{
		ServiceID:  cfg.EmailJSServiceID,
		TemplateID: cfg.EmailJSTemplate,
		PublicKey:  cfg.EmailJSPublicKey,
		BaseURL:    cfg.EmailJSBaseURL,
	})

	users := mysql.NewUserRepository(gdb)
	leaves := mysql.NewLeaveRepository(gdb)
	notifs := mysql.NewNotificationRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	authUsecase := authUC.NewUsecase(users, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	leaveUsecase := leaveUC.NewUsecase(leaves, notifs, guow, mail)

	health := httpadp.NewHealthHandler()
	authH := httpadp.NewAuthHandler(authUsecase)
	leaveH := httpadp.NewLeaveHandler(leaveUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", health.Health)
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)
	e.GET("/auth/me", authH.Me, appmw.RequireAuth(cfg.JWTSecret))

	requireAuth := appmw.RequireAuth(cfg.JWTSecret)
	idemp := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	g := e.Group("/leaves", requireAuth)
	g.GET("", leaveH.List)
	g.GET("/:leave_id", leaveH.Get)
	g.GET("/:leave_id/notifications", leaveH.Notifications)
	g.POST("", leaveH.Submit, idemp)
	g.POST("/:leave_id/hod", leaveH.HODDecide, appmw.RequireRole(user.RoleHOD), idemp)
	g.POST("/:leave_id/principal", leaveH.PrincipalDecide, appmw.RequireRole(user.RolePrincipal), idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
