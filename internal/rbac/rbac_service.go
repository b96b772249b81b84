package rbac

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads policies into enforcer. With no policies given the
// DefaultPolicies table is used.
func NewService(enforcer *casbin.Enforcer, policies [][]string, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	if len(policies) == 0 {
		policies = DefaultPolicies()
	}

	enforcer.ClearPolicy()
	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("load rbac policies: %w", err)
	}
	l.Info("rbac policies loaded", zap.Int("count", len(policies)))

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub := Subject(req.RoleID)
	allowed, err := s.enforcer.Enforce(sub, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("subject", sub),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("subject", sub),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
