package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rxglitch/claimcheck/internal/model"
	"github.com/rxglitch/claimcheck/internal/rules"
)

// validateResponse is the JSON shape of a single-claim evaluation.
type validateResponse struct {
	Score         int        `json:"score"`
	DenialRisk    model.Tier `json:"denial_risk"`
	Reasons       []string   `json:"reasons"`
	Fixes         []string   `json:"recommended_fixes"`
	PredictedRisk float64    `json:"predicted_risk"`
}

func (s *Server) handleValidate(c echo.Context) error {
	var req rules.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	res := s.eval.Evaluate(req)
	return c.JSON(http.StatusOK, validateResponse{
		Score:         res.Score,
		DenialRisk:    res.Tier,
		Reasons:       res.Reasons,
		Fixes:         res.Fixes,
		PredictedRisk: rules.DenialRisk(s.catalog, req.CPT, []string{req.Diagnosis}),
	})
}

func (s *Server) handleSamples(c echo.Context) error {
	return c.JSON(http.StatusOK, rules.Samples(time.Now()))
}

// pageData feeds the form template. One value per request; nothing is
// carried between submissions server-side.
type pageData struct {
	Samples    []rules.Sample
	Form       rules.Request
	Key        string
	Result     *rules.Result
	BadgeClass string
}

func (s *Server) handleIndex(c echo.Context) error {
	data := pageData{
		Samples: rules.Samples(time.Now()),
		Key:     c.FormValue("key"),
	}

	if sampleKey := c.FormValue("sample"); sampleKey != "" {
		if sample, ok := rules.SampleByKey(time.Now(), sampleKey); ok {
			data.Form = rules.Request{
				CPT:       sample.CPT,
				Diagnosis: sample.DX,
				Payer:     sample.Payer,
				DOB:       sample.DOB,
				DOS:       sample.DOS,
			}
		}
	}

	if c.Request().Method == http.MethodPost && c.FormValue("sample") == "" {
		form := rules.Request{
			CPT:       c.FormValue("cpt"),
			Diagnosis: c.FormValue("dx"),
			Payer:     c.FormValue("payer"),
			DOB:       c.FormValue("dob"),
			DOS:       c.FormValue("dos"),
		}
		res := s.eval.Evaluate(form)
		data.Form = form
		data.Result = &res
		data.BadgeClass = badgeClass(res.Tier)
	}

	return c.Render(http.StatusOK, "page", data)
}

// badgeClass maps a tier to its badge color. The mapping follows the tier
// thresholds exactly; there is no separate display cutoff.
func badgeClass(t model.Tier) string {
	switch t {
	case model.TierGood:
		return "badge-green"
	case model.TierBorderline:
		return "badge-amber"
	default:
		return "badge-red"
	}
}
