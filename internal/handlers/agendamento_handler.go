package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syndata/field-scheduler/internal/dto"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/httpresp"
	"github.com/syndata/field-scheduler/internal/middleware"
	ucag "github.com/syndata/field-scheduler/internal/usecase/agendamento"
	"github.com/syndata/field-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AgendamentoHandler struct {
	criar     *ucag.CreateAgendamento
	listar    *ucag.ListarAgendamentos
	listarMe  *ucag.ListarAgendamentosDoTecnico
	grade     *ucag.MontarGrade
	detalhe   *ucag.DetalheAgendamento
	locs      *ucag.ListarLocalizacoes
	proximo   *ucag.ProximoNumero
	atualizar *ucag.AtualizarAgendamento
	remarcar  *ucag.RemarcarAgendamento
	cancelar  *ucag.CancelarAgendamento
	saida     *ucag.RegistrarSaida
	chegada   *ucag.RegistrarChegada
	finalizar *ucag.FinalizarAgendamento
	excluir   *ucag.ExcluirAgendamento
}

func NewAgendamentoHandler(
	criar *ucag.CreateAgendamento,
	listar *ucag.ListarAgendamentos,
	listarMe *ucag.ListarAgendamentosDoTecnico,
	grade *ucag.MontarGrade,
	detalhe *ucag.DetalheAgendamento,
	locs *ucag.ListarLocalizacoes,
	proximo *ucag.ProximoNumero,
	atualizar *ucag.AtualizarAgendamento,
	remarcar *ucag.RemarcarAgendamento,
	cancelar *ucag.CancelarAgendamento,
	saida *ucag.RegistrarSaida,
	chegada *ucag.RegistrarChegada,
	finalizar *ucag.FinalizarAgendamento,
	excluir *ucag.ExcluirAgendamento,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		criar:     criar,
		listar:    listar,
		listarMe:  listarMe,
		grade:     grade,
		detalhe:   detalhe,
		locs:      locs,
		proximo:   proximo,
		atualizar: atualizar,
		remarcar:  remarcar,
		cancelar:  cancelar,
		saida:     saida,
		chegada:   chegada,
		finalizar: finalizar,
		excluir:   excluir,
	}
}

// ======================================================
// Requests
// ======================================================

type CreateAgendamentoRequest struct {
	CodigoCliente     uint  `json:"codigoCliente" binding:"required"`
	CodigoResponsavel *uint `json:"codigoResponsavel"`

	Titulo     string `json:"titulo"`
	Prioridade string `json:"prioridade"`
	CodLoja    uint   `json:"codLoja"`
	CodGrupo   uint   `json:"codGrupo"`

	AgendaAbertura string `json:"agendaAbertura"`

	Data string `json:"data" binding:"required"` // "2006-01-02"
	Hora string `json:"hora" binding:"required"` // "15:04"
}

type CancelarRequest struct {
	Motivo string `json:"motivo"`
}

type RemarcarRequest struct {
	DataHora string `json:"dataHora" binding:"required"` // "2006-01-02T15:04:05"
	Motivo   string `json:"motivo"`
}

type CoordsRequest struct {
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Precisao *float64 `json:"precisao"`
	Origem   string   `json:"origem"`
}

type FinalizarRequest struct {
	Retorno           string `json:"retorno"`
	AssinaturaCliente string `json:"assinaturaCliente"`
	CoordsRequest
}

// coords converte o payload opcional de posição; posição fora dos
// limites geográficos é descartada em vez de derrubar a operação.
func (r *CoordsRequest) coords() *ucag.Coords {
	if r == nil || r.Lat == nil || r.Lng == nil {
		return nil
	}
	if !validators.IsValidCoordinate(*r.Lat, *r.Lng) {
		return nil
	}

	return &ucag.Coords{
		Lat:      *r.Lat,
		Lng:      *r.Lng,
		Precisao: r.Precisao,
		Origem:   r.Origem,
	}
}

// ======================================================
// Secretaria
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	ap, err := h.criar.Execute(c.Request.Context(), ucag.CreateAgendamentoInput{
		CodigoCliente:       req.CodigoCliente,
		CodigoResponsavel:   req.CodigoResponsavel,
		SecretariaUsuarioID: userID,
		Titulo:              req.Titulo,
		Prioridade:          req.Prioridade,
		CodLoja:             req.CodLoja,
		CodGrupo:            req.CodGrupo,
		AgendaAbertura:      req.AgendaAbertura,
		Data:                req.Data,
		Hora:                req.Hora,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DetalheFromAgendamento(ap))
}

func (h *AgendamentoHandler) List(c *gin.Context) {
	list, err := h.listar.Execute(c.Request.Context(), c.Query("ini"), c.Query("fim"))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AgendamentoHandler) Grade(c *gin.Context) {
	var tecnicoID *uint
	if v := c.Query("tecnicoId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			t := uint(id)
			tecnicoID = &t
		}
	}

	grade, err := h.grade.Execute(
		c.Request.Context(),
		c.Query("data"),
		tecnicoID,
		c.Query("q"),
	)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, grade)
}

func (h *AgendamentoHandler) Detalhe(c *gin.Context) {
	chave, ok := paramID(c)
	if !ok {
		return
	}

	det, err := h.detalhe.Execute(c.Request.Context(), chave)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, det)
}

func (h *AgendamentoHandler) Localizacoes(c *gin.Context) {
	chave, ok := paramID(c)
	if !ok {
		return
	}

	locs, err := h.locs.Execute(c.Request.Context(), chave)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, locs)
}

func (h *AgendamentoHandler) ProximoNumero(c *gin.Context) {
	n, err := h.proximo.Execute(c.Request.Context())
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"proximoNumero": n})
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.AtualizarAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	ap, err := h.atualizar.Execute(c.Request.Context(), ucag.AtualizarAgendamentoInput{
		Chave:             chave,
		UsuarioID:         userID,
		DataHoraInicial:   req.DataHoraInicial,
		Motivo:            req.Motivo,
		CodigoResponsavel: req.CodigoResponsavel,
		Titulo:            req.Titulo,
		Prioridade:        req.Prioridade,
		AgendaRetorno:     req.AgendaRetorno,
		AssinaturaBase64:  req.AssinaturaBase64,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, dto.DetalheFromAgendamento(ap))
}

func (h *AgendamentoHandler) Remarcar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	var req RemarcarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	ap, err := h.remarcar.Execute(c.Request.Context(), userID, chave, req.DataHora, req.Motivo)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAgendamento(ap))
}

func (h *AgendamentoHandler) Cancelar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	var req CancelarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	ap, err := h.cancelar.Execute(c.Request.Context(), userID, chave, req.Motivo)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAgendamento(ap))
}

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.excluir.Execute(c.Request.Context(), userID, chave); err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// Técnico
// ======================================================

func (h *AgendamentoHandler) ListMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	list, err := h.listarMe.Execute(
		c.Request.Context(),
		userID,
		c.Query("ini"),
		c.Query("fim"),
	)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AgendamentoHandler) Saida(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	// Posição é opcional; corpo vazio não derruba a saída.
	var req CoordsRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.saida.Execute(c.Request.Context(), chave, userID, req.coords())
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAgendamento(ap))
}

func (h *AgendamentoHandler) Chegada(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	var req CoordsRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.chegada.Execute(c.Request.Context(), chave, userID, req.coords())
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAgendamento(ap))
}

func (h *AgendamentoHandler) Finalizar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chave, ok := paramID(c)
	if !ok {
		return
	}

	var req FinalizarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	ap, err := h.finalizar.Execute(c.Request.Context(), ucag.FinalizarInput{
		Chave:            chave,
		TecnicoID:        userID,
		Retorno:          req.Retorno,
		AssinaturaBase64: req.AssinaturaCliente,
		Coords:           req.coords(),
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAgendamento(ap))
}

// ======================================================
// Helpers
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
