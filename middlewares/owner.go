package middlewares

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/services"
	"github.com/dgamboa/foodtrucks-backend/utils"
)

// The authorization decision. Hierarchical resources compare the caller
// against the resolved owner of the resource; self-scoped resources compare
// the caller against the user id carried by the body or record itself.

// RequireOwner resolves the owner of the resource named by the path param
// and rejects callers that are not it. Runs after the existence gate, but
// the resolver itself fails closed on a missing hop.
func RequireOwner(owners *services.OwnershipService, kind services.ResourceKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := paramUint(c, param)
		requireOwnerOf(c, owners, kind, id, c.Param(param))
	}
}

// RequireBodyTruckOwner is RequireOwner for routes whose parent truck id
// arrives in the body rather than the path (e.g. POST /items).
func RequireBodyTruckOwner(owners *services.OwnershipService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetUint("bodyTruckID")
		requireOwnerOf(c, owners, services.KindTruck, id, fmt.Sprint(id))
	}
}

func requireOwnerOf(c *gin.Context, owners *services.OwnershipService, kind services.ResourceKind, id uint, rawID string) {
	ownerID, err := owners.ResolveOwner(c.Request.Context(), kind, id)
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, fmt.Sprintf("could not find %s with id %s", kind, rawID))
		c.Abort()
		return
	}
	if err != nil {
		resp.Internal(c, err)
		c.Abort()
		return
	}

	if ownerID != utils.CurrentUserID(c) {
		resp.Unauthorized(c, "invalid credentials")
		c.Abort()
		return
	}
	c.Next()
}

// RequireSelfBody requires the user_id in the request body to equal the
// token subject. Never trusts the body id for identity — only the token.
func RequireSelfBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetUint("bodyUserID") != utils.CurrentUserID(c) {
			resp.Unauthorized(c, "invalid credentials")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelfRecord requires the user_id on the fetched record to equal the
// token subject (e.g. deleting a favorite by its own id).
func RequireSelfRecord() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetUint("recordUserID") != utils.CurrentUserID(c) {
			resp.Unauthorized(c, "invalid credentials")
			c.Abort()
			return
		}
		c.Next()
	}
}
