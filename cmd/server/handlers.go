package main

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/healthoracle/internal/catalog"
	"github.com/Skufu/healthoracle/internal/predictor"
	"github.com/Skufu/healthoracle/internal/report"
	"github.com/Skufu/healthoracle/internal/web"
)

const selectionRequired = "Please select at least one symptom"

type PredictionRequest struct {
	Symptoms []string `json:"symptoms"`
}

type PredictionResponse struct {
	Predictions     []predictor.Prediction `json:"predictions"`
	UnknownSymptoms []string               `json:"unknownSymptoms"`
}

type handler struct {
	catalog   *catalog.Catalog
	predictor *predictor.Predictor
	now       func() time.Time
}

func newHandler(cat *catalog.Catalog) *handler {
	return &handler{
		catalog:   cat,
		predictor: predictor.New(cat),
		now:       time.Now,
	}
}

func (h *handler) form(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", web.NewFormPage(h.catalog, c.QueryArray("symptom"), ""))
}

func (h *handler) check(c *gin.Context) {
	ids := c.PostFormArray("symptom")
	if len(ids) == 0 {
		c.HTML(http.StatusUnprocessableEntity, "index.html", web.NewFormPage(h.catalog, nil, selectionRequired))
		return
	}

	c.HTML(http.StatusOK, "results.html", web.ResultsPage{
		SymptomIDs:  ids,
		Selected:    h.catalog.SelectSymptoms(ids),
		Predictions: h.predictor.Predict(ids),
	})
}

func (h *handler) report(c *gin.Context) {
	ids := c.QueryArray("symptom")
	if len(ids) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": selectionRequired})
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, h.catalog.SelectSymptoms(ids), h.predictor.Predict(ids), h.now()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="health-oracle-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *handler) listSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symptoms": h.catalog.Symptoms()})
}

func (h *handler) listDiseases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diseases": h.catalog.Diseases()})
}

func (h *handler) getDisease(c *gin.Context) {
	d, ok := h.catalog.Disease(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "disease not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *handler) predict(c *gin.Context) {
	var req PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, PredictionResponse{
		Predictions:     h.predictor.Predict(req.Symptoms),
		UnknownSymptoms: h.predictor.Unknown(req.Symptoms),
	})
}
