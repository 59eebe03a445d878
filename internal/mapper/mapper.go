// Package mapper converts between the wire shapes and the persisted User.
package mapper

import (
	"time"

	"github.com/shopnet/user-service/internal/model"
)

// RequestToUser builds a persistable User from an edit request.
// On create, pass time.Now() as registrationDate; on update, pass the
// existing record's RegistrationDate so it is carried forward unchanged.
func RequestToUser(req *model.UserEditRequest, registrationDate time.Time) *model.User {
	user := &model.User{
		Name:             req.Name,
		Email:            req.Email,
		RegistrationDate: registrationDate,
	}
	if req.ID != nil {
		user.ID = *req.ID
	}
	return user
}

// UserToView projects a stored User into its read-only view shape.
func UserToView(u *model.User) *model.UserView {
	return &model.UserView{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		RegistrationDate: u.RegistrationDate,
	}
}
