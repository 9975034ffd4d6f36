package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/budget"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/narrative"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/ordering"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
)

// queryFromURL reads company, year, legend, historyYear and edit.
func queryFromURL(r *http.Request) (report.Query, error) {
	v := r.URL.Query()
	q := report.Query{
		Filter: report.Filter{
			Company: v.Get("company"),
			Year:    v.Get("year"),
			Legend:  v.Get("legend"),
		},
		HistoryYear: v.Get("historyYear"),
	}
	if raw := v.Get("edit"); raw != "" {
		edit, err := strconv.ParseBool(raw)
		if err != nil {
			return q, fmt.Errorf("%w: edit must be a boolean", errBadRequest)
		}
		q.EditMode = edit
	}
	return q, nil
}

// buildLocked returns the forest for q with the workspace group order applied.
// Callers hold s.mu.
func (s *Server) buildLocked(q report.Query) report.Forest {
	q.Order = s.ws.GroupOrder()
	return s.cache.Build(s.ws.Revision(), s.ws.Items(), q)
}

type netResult struct {
	Realized model.MonthValues `json:"realized"`
	Planned  model.MonthValues `json:"planned"`
}

type treeResponse struct {
	Query        report.Query      `json:"query"`
	Months       []string          `json:"months"`
	Forest       report.Forest     `json:"forest"`
	NetResult    netResult         `json:"netResult"`
	VerticalBase model.MonthValues `json:"verticalBase"`
	// PlannedRevenue is the base of percentage entries, only on the budget screen.
	PlannedRevenue model.MonthValues `json:"plannedRevenue,omitempty"`
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromURL(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	forest := s.buildLocked(q)
	if forest == nil {
		forest = report.Forest{}
	}
	realized, planned := report.NetResult(forest)
	resp := treeResponse{
		Query:        q,
		Months:       report.AvailableMonths(s.ws.Items(), q),
		Forest:       forest,
		NetResult:    netResult{Realized: realized, Planned: planned},
		VerticalBase: report.VerticalBase(forest),
	}
	if q.EditMode {
		ed := budget.NewEditor(s.ws, s.ws.Legends(), budget.Context{Company: q.Company, Year: q.Year, Legend: q.Legend})
		resp.PlannedRevenue = ed.RevenueBase()
	}
	writeJSON(w, http.StatusOK, resp)
}

type dimensionsResponse struct {
	Companies   []string `json:"companies"`
	Years       []string `json:"years"`
	DefaultYear string   `json:"defaultYear"`
	Months      []string `json:"months"`
}

func (s *Server) handleDimensions(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromURL(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.ws.Items()
	writeJSON(w, http.StatusOK, dimensionsResponse{
		Companies:   report.AvailableCompanies(items),
		Years:       report.AvailableYears(items),
		DefaultYear: report.DefaultYear(items),
		Months:      report.AvailableMonths(items, q),
	})
}

type legendResponse struct {
	Label   string   `json:"label"`
	Order   int      `json:"order"`
	Members []string `json:"members"`
}

func (s *Server) handleLegends(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	legends := s.ws.Legends().All()
	out := make([]legendResponse, 0, len(legends))
	for _, l := range legends {
		out = append(out, legendResponse{Label: l.Label, Order: l.Order, Members: l.Members()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(w, http.StatusOK, s.ws.GroupOrder())
}

type moveRequest struct {
	Labels    []string `json:"labels" validate:"required,min=1,dive,required"`
	Index     int      `json:"index" validate:"gte=0"`
	Direction string   `json:"direction" validate:"required,oneof=up down"`
}

type moveResponse struct {
	Labels []string        `json:"labels"`
	Order  ordering.Manual `json:"order"`
}

func (s *Server) handleMoveOrder(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.respondError(w, r, err)
		return
	}
	dir, err := ordering.ParseDirection(req.Direction)
	if err != nil {
		s.respondError(w, r, errors.Join(errBadRequest, err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.ws.GroupOrder().Move(req.Labels, req.Index, dir)
	s.ws.SetGroupOrder(order)
	if err := s.ws.Save(); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, moveResponse{Labels: order.Sorted(req.Labels), Order: order})
}

// budgetContext is the selection every budget write carries.
type budgetContext struct {
	Company    string `json:"company" validate:"required"`
	Year       string `json:"year" validate:"required"`
	Legend     string `json:"legend"`
	SourceYear string `json:"sourceYear"`
}

func (c budgetContext) context() budget.Context {
	return budget.Context{Company: c.Company, Year: c.Year, Legend: c.Legend, SourceYear: c.SourceYear}
}

type setCellRequest struct {
	budgetContext
	ItemID string `json:"itemId" validate:"required"`
	Month  string `json:"month" validate:"required"`
	Value  string `json:"value"`
}

type setCellResponse struct {
	ItemID  string          `json:"itemId"`
	Month   string          `json:"month"`
	Amount  decimal.Decimal `json:"amount"`
	Formula string          `json:"formula,omitempty"`
}

func (s *Server) handleSetCell(w http.ResponseWriter, r *http.Request) {
	var req setCellRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ed := budget.NewEditor(s.ws, s.ws.Legends(), req.context())
	if err := ed.SetCell(req.ItemID, req.Month, req.Value); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.ws.Save(); err != nil {
		s.respondError(w, r, err)
		return
	}

	it, _ := s.ws.Item(req.ItemID)
	month := model.Months[model.MonthIndex(req.Month)]
	key := model.Key{Company: req.Company, Year: req.Year, Sector: req.Legend, Month: month}
	writeJSON(w, http.StatusOK, setCellResponse{
		ItemID:  req.ItemID,
		Month:   month,
		Amount:  it.Planned.Get(key),
		Formula: it.Formulas[key],
	})
}

type distributeRequest struct {
	budgetContext
	NodeID string          `json:"nodeId" validate:"required"`
	Annual decimal.Decimal `json:"annual"`
	Mode   string          `json:"mode" validate:"omitempty,oneof=history equal"`
}

type countResponse struct {
	Items int `json:"items"`
}

func (s *Server) handleDistribute(w http.ResponseWriter, r *http.Request) {
	var req distributeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.respondError(w, r, err)
		return
	}
	mode := budget.ModeHistory
	if req.Mode != "" {
		mode = budget.Mode(req.Mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ed := budget.NewEditor(s.ws, s.ws.Legends(), req.context())
	node := s.buildLocked(ed.Query()).Find(req.NodeID)
	if node == nil {
		s.respondError(w, r, fmt.Errorf("%w: node %q", errNotFound, req.NodeID))
		return
	}
	n, err := ed.Distribute(node, req.Annual, mode)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.ws.Save(); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Items: n})
}

func (s *Server) handleCopyRealized(w http.ResponseWriter, r *http.Request) {
	var req budgetContext
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := budget.NewEditor(s.ws, s.ws.Legends(), req.context()).CopyRealized()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.ws.Save(); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Items: n})
}

type analysisRequest struct {
	report.Filter
}

type analysisResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.analyst == nil {
		s.respondError(w, r, errUnavailable)
		return
	}
	var req analysisRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	q := report.Query{Filter: req.Filter}
	s.mu.RLock()
	snap := narrative.Snapshot{
		Company: s.ws.Config().Company.Name,
		Forest:  s.buildLocked(q),
		Months:  report.AvailableMonths(s.ws.Items(), q),
	}
	s.mu.RUnlock()

	md, err := s.analyst.Analyze(r.Context(), snap)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	html, err := narrative.RenderHTML(md)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analysisResponse{Markdown: md, HTML: html})
}
