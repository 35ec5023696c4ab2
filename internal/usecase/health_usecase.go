package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	pool *pgxpool.Pool
}

func NewHealthUsecase(pool *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{pool: pool}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status": "ok",
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := u.pool.Ping(pingCtx); err != nil {
		result["status"] = "degraded"
		result["database"] = "unreachable"
	} else {
		result["database"] = "ok"
	}

	if redis.IsAvailable() {
		if err := redis.Client().Ping(pingCtx).Err(); err != nil {
			result["redis"] = "unreachable"
		} else {
			result["redis"] = "ok"
		}
	} else {
		result["redis"] = "disabled"
	}

	return result
}
