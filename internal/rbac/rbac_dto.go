package rbac

import "github.com/NguyenBaKy2003/backend-recruitment/internal/domain"

type EnforceRequest = domain.EnforceRequest

type EnforceResponse = domain.EnforceResponse
