package domain

// EnforceRequest asks whether the role may perform action on resource.
// It lives outside the rbac package so middleware can depend on it without
// importing the enforcer.
type EnforceRequest struct {
	RoleID   uint   `json:"role_id"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
