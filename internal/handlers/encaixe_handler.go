package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	enc "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/dto"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/httpresp"
	"github.com/syndata/field-scheduler/internal/middleware"
	"github.com/syndata/field-scheduler/internal/models"
	ucenc "github.com/syndata/field-scheduler/internal/usecase/encaixe"
)

// ======================================================
// HANDLER
// ======================================================

type EncaixeHandler struct {
	criar     *ucenc.CriarEncaixe
	listar    *ucenc.ListarEncaixes
	solicitar *ucenc.SolicitarEncaixe
	atribuir  *ucenc.AtribuirTecnico
	converter *ucenc.ConverterEncaixe
	atualizar *ucenc.AtualizarEncaixe
	excluir   *ucenc.ExcluirEncaixe
}

func NewEncaixeHandler(
	criar *ucenc.CriarEncaixe,
	listar *ucenc.ListarEncaixes,
	solicitar *ucenc.SolicitarEncaixe,
	atribuir *ucenc.AtribuirTecnico,
	converter *ucenc.ConverterEncaixe,
	atualizar *ucenc.AtualizarEncaixe,
	excluir *ucenc.ExcluirEncaixe,
) *EncaixeHandler {
	return &EncaixeHandler{
		criar:     criar,
		listar:    listar,
		solicitar: solicitar,
		atribuir:  atribuir,
		converter: converter,
		atualizar: atualizar,
		excluir:   excluir,
	}
}

// ======================================================
// Requests
// ======================================================

type CriarEncaixeRequest struct {
	CodigoCliente *uint  `json:"codigoCliente"`
	NomeCliente   string `json:"nomeCliente"`
	FoneCliente   string `json:"foneCliente"`

	CodigoResponsavel *uint `json:"codigoResponsavel"`

	TipoSolicitacao string `json:"tipoSolicitacao"`
	TipoUrgencia    string `json:"tipoUrgencia"`
	Observacao      string `json:"observacao"`
}

type AtribuirRequest struct {
	TecnicoID uint `json:"tecnicoId" binding:"required"`
}

type ConverterRequest struct {
	Data    string `json:"data" binding:"required"`    // "2006-01-02"
	HoraIni string `json:"horaIni" binding:"required"` // "15:04"
	HoraFim string `json:"horaFim"`                    // "15:04", opcional
}

// ======================================================
// Secretaria
// ======================================================

func (h *EncaixeHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CriarEncaixeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	e, err := h.criar.Execute(c.Request.Context(), ucenc.CriarEncaixeInput{
		UsuarioID:         userID,
		CodigoCliente:     req.CodigoCliente,
		NomeCliente:       req.NomeCliente,
		FoneCliente:       req.FoneCliente,
		CodigoResponsavel: req.CodigoResponsavel,
		TipoSolicitacao:   req.TipoSolicitacao,
		TipoUrgencia:      req.TipoUrgencia,
		Observacao:        req.Observacao,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

func (h *EncaixeHandler) List(c *gin.Context) {
	list, err := h.listar.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, list)
}

// Aguardando lista os encaixes em confirmação. Técnico só enxerga os
// próprios; a secretaria vê todos.
func (h *EncaixeHandler) Aguardando(c *gin.Context) {
	var tecnicoID *uint
	if c.GetString(middleware.ContextUserRole) == models.RoleTecnico {
		id := c.MustGet(middleware.ContextUserID).(uint)
		tecnicoID = &id
	}

	list, err := h.listar.Aguardando(c.Request.Context(), tecnicoID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *EncaixeHandler) Atribuir(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	var req AtribuirRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	e, err := h.atribuir.Execute(c.Request.Context(), userID, chave, req.TecnicoID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, e)
}

func (h *EncaixeHandler) Converter(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	// Data/hora vêm na query (cliente legado) ou no corpo.
	req := ConverterRequest{
		Data:    c.Query("data"),
		HoraIni: c.Query("horaIni"),
		HoraFim: c.Query("horaFim"),
	}
	if req.Data == "" {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
			return
		}
	}

	e, ap, err := h.converter.Execute(c.Request.Context(), ucenc.ConverterEncaixeInput{
		Chave:     chave,
		UsuarioID: userID,
		Data:      req.Data,
		HoraIni:   req.HoraIni,
		HoraFim:   req.HoraFim,
	})
	if err != nil {
		// Agendamento pode ter sido criado mesmo com a amarração
		// falhando; o corpo do erro carrega a chave para triagem.
		if httperr.IsBusiness(err, "conversion_link_failed") && ap != nil {
			c.JSON(http.StatusConflict, gin.H{
				"error_code":       "conversion_link_failed",
				"message":          "Agendamento criado, mas o encaixe não foi amarrado.",
				"chaveAgendamento": ap.Chave,
			})
			return
		}
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"encaixe":     e,
		"agendamento": dto.FromAgendamento(ap),
	})
}

func (h *EncaixeHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.AtualizarEncaixeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	e, err := h.atualizar.Execute(c.Request.Context(), ucenc.AtualizarEncaixeInput{
		Chave:           chave,
		UsuarioID:       userID,
		NomeCliente:     req.NomeCliente,
		FoneCliente:     req.FoneCliente,
		CodigoCliente:   req.CodigoCliente,
		TipoSolicitacao: req.TipoSolicitacao,
		TipoUrgencia:    req.TipoUrgencia,
		Observacao:      req.Observacao,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, e)
}

func (h *EncaixeHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	e, err := h.excluir.Execute(c.Request.Context(), userID, chave)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, e)
}

// ======================================================
// Técnico
// ======================================================

// Disponiveis lista os encaixes abertos que qualquer técnico pode
// puxar para si.
func (h *EncaixeHandler) Disponiveis(c *gin.Context) {
	list, err := h.listar.Execute(c.Request.Context(), string(enc.StatusAberto))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *EncaixeHandler) Solicitar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	e, err := h.solicitar.Execute(c.Request.Context(), chave, userID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, e)
}
