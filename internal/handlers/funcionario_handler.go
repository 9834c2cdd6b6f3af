package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syndata/field-scheduler/internal/cache"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/httpresp"
	"github.com/syndata/field-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// FuncionarioHandler expõe os lookups de equipe usados nos selects do
// painel. São listas pequenas e estáveis, então passam pelo cache.
type FuncionarioHandler struct {
	db    *gorm.DB
	cache *cache.JSONCache
}

func NewFuncionarioHandler(db *gorm.DB, c *cache.JSONCache) *FuncionarioHandler {
	return &FuncionarioHandler{db: db, cache: c}
}

type FuncionarioDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Usuario string `json:"usuario"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
}

func (h *FuncionarioHandler) Tecnicos(c *gin.Context) {
	h.listByRole(c, models.RoleTecnico)
}

func (h *FuncionarioHandler) Secretarias(c *gin.Context) {
	h.listByRole(c, models.RoleSecretaria)
}

func (h *FuncionarioHandler) listByRole(c *gin.Context, role string) {
	key := fmt.Sprintf("funcionarios:%s", role)

	var cached []FuncionarioDTO
	if h.cache.Get(c.Request.Context(), key, &cached) {
		httpresp.List(c, cached)
		return
	}

	var funcionarios []models.Funcionario
	if err := h.db.
		Where("role = ? AND ativo = ?", role, true).
		Order("name ASC").
		Find(&funcionarios).Error; err != nil {

		httperr.Internal(c, "failed_to_list_funcionarios", "Erro ao listar funcionários.")
		return
	}

	out := make([]FuncionarioDTO, 0, len(funcionarios))
	for _, f := range funcionarios {
		out = append(out, FuncionarioDTO{
			ID:      f.ID,
			Name:    f.Name,
			Usuario: f.Usuario,
			Phone:   f.Phone,
			Role:    f.Role,
		})
	}

	h.cache.Set(c.Request.Context(), key, out)
	httpresp.List(c, out)
}
