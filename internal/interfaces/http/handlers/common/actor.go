// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/constants"
)

// CurrentActor returns the user stored by the auth middleware, or nil. Use
// cases reject a nil actor as unauthorized.
func CurrentActor(c *gin.Context) *user.User {
	v, ok := c.Get(constants.ContextKeyActor)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}
