package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aristath/dcf-builder/internal/database/repositories"
	"github.com/aristath/dcf-builder/internal/workbook"
	"github.com/aristath/dcf-builder/pkg/formulas"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "dcf-builder",
	})
}

// writeValue responds with a ticker lookup result. A nil value is not an
// error; the field is simply absent for this ticker.
func (s *Server) writeValue(w http.ResponseWriter, ticker string, value *float64) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ticker": ticker,
		"value":  value,
	})
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	s.writeValue(w, ticker, s.udf.Price(ticker))
}

func (s *Server) handleMarketCap(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	s.writeValue(w, ticker, s.udf.MarketCap(ticker))
}

func (s *Server) handleBeta(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	s.writeValue(w, ticker, s.udf.Beta(ticker))
}

func (s *Server) handleShares(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	s.writeValue(w, ticker, s.udf.SharesOutstanding(ticker))
}

func (s *Server) handleHigh52W(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	s.writeValue(w, ticker, s.udf.FiftyTwoWeekHigh(ticker))
}

func (s *Server) handleLow52W(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	s.writeValue(w, ticker, s.udf.FiftyTwoWeekLow(ticker))
}

func (s *Server) handleWACC(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	s.writeValue(w, ticker, s.udf.WACC(ticker))
}

func (s *Server) handleRiskFreeRate(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"value": s.udf.RiskFreeRate(),
	})
}

func (s *Server) handleRevenue(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	s.writeValue(w, ticker, s.udf.Revenue(ticker, float64(year)))
}

func (s *Server) handleEBITDA(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	s.writeValue(w, ticker, s.udf.EBITDA(ticker, float64(year)))
}

// generateRequest is the body of POST /api/v1/generate.
type generateRequest struct {
	Ticker     string `json:"ticker"`
	Scenario   string `json:"scenario"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	scenario := formulas.ScenarioByName(req.Scenario)

	builder := workbook.New(req.Ticker, scenario, s.fetcher, s.cfg, s.log)
	path, err := builder.Generate(req.OutputPath)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", req.Ticker).Msg("Workbook generation failed")
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	summary := builder.Summary()
	inputs := builder.Inputs()
	if s.runs != nil {
		run := &repositories.ModelRun{
			Ticker:     req.Ticker,
			Scenario:   scenario.Name,
			OutputPath: path,
			Price:      s.udf.Price(req.Ticker),
			WACC:       &inputs.WACC,
			DCFValue:   &summary.ValuePerShare,
		}
		if _, err := s.runs.Record(run); err != nil {
			s.log.Warn().Err(err).Msg("Failed to record run")
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":          req.Ticker,
		"scenario":        scenario.Name,
		"output_path":     path,
		"wacc":            inputs.WACC,
		"value_per_share": summary.ValuePerShare,
	})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		s.writeJSON(w, http.StatusOK, []interface{}{})
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	var (
		runs []repositories.ModelRun
		err  error
	)
	if ticker := r.URL.Query().Get("ticker"); ticker != "" {
		runs, err = s.runs.ByTicker(ticker, limit)
	} else {
		runs, err = s.runs.Recent(limit)
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]map[string]interface{}, 0, len(runs))
	for _, run := range runs {
		out = append(out, map[string]interface{}{
			"id":          run.ID,
			"ticker":      run.Ticker,
			"scenario":    run.Scenario,
			"output_path": run.OutputPath,
			"price":       run.Price,
			"wacc":        run.WACC,
			"dcf_value":   run.DCFValue,
			"created_at":  run.CreatedAt,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if err := s.fetcher.ClearCache(); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
