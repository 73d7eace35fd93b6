package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/kmagpayo/yieldtrack-backend/internal/repository"
)

type Repositories struct {
	Users      repo.Users
	YieldRates repo.YieldRates
	Accounts   repo.Accounts
	AuditLogs  repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:      &usersRepo{pool},
		YieldRates: &yieldRatesRepo{pool},
		Accounts:   &accountsRepo{pool},
		AuditLogs:  &auditLogsRepo{pool},
	}
}
