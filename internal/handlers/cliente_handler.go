package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/httpresp"
	"github.com/syndata/field-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ClienteHandler struct {
	db *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler {
	return &ClienteHandler{db: db}
}

// List busca clientes por nome, CPF/CNPJ ou fone para o autocomplete
// do painel.
func (h *ClienteHandler) List(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := h.db.Model(&models.Cliente{})

	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"nome ILIKE ? OR cpf LIKE ? OR cnpj LIKE ? OR fone LIKE ?",
			like, like, like, like,
		)
	}

	var clientes []models.Cliente
	if err := query.
		Order("nome ASC").
		Limit(limit).
		Find(&clientes).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clientes", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clientes)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "cliente_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_cliente", "Erro ao buscar cliente.")
		return
	}

	httpresp.OK(c, cliente)
}
