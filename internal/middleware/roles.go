package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

// RequireRole bloqueia a rota para quem não tiver um dos papéis
// listados. Assume AuthMiddleware já executado no grupo.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if _, ok := allowed[role]; !ok {
			httperr.Abort(c, http.StatusForbidden,
				"forbidden_for_role", "Acesso não permitido para este perfil.")
			return
		}
		c.Next()
	}
}

func RequireSecretaria() gin.HandlerFunc {
	return RequireRole(models.RoleSecretaria)
}

func RequireTecnico() gin.HandlerFunc {
	return RequireRole(models.RoleTecnico)
}
