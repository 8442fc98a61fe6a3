package handlers

import (
	"net/http"

	"github.com/turtacn/gpcr-studio/internal/config"
)

// StudioHandler serves the presentation shell's static configuration and
// descriptive content.  The shell renders whatever it receives here; none of
// it feeds back into the prediction pipeline.
type StudioHandler struct {
	cfg              config.StudioConfig
	defaultThreshold float64
}

// NewStudioHandler constructs the handler.
func NewStudioHandler(cfg config.StudioConfig, defaultThreshold float64) *StudioHandler {
	return &StudioHandler{cfg: cfg, defaultThreshold: defaultThreshold}
}

// shellConfig is the studio configuration plus the pipeline settings the
// shell needs to initialise its controls (the threshold slider).
type shellConfig struct {
	config.StudioConfig
	DefaultThreshold float64 `json:"default_threshold"`
}

// Config handles GET /api/v1/studio/config.
func (h *StudioHandler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, shellConfig{
		StudioConfig:     h.cfg,
		DefaultThreshold: h.defaultThreshold,
	})
}

// aboutContent mirrors the Overview / Methods / Results tabs of the shell.
type aboutContent struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"abstract"`
	Keywords []string `json:"keywords"`
	Methods  []string `json:"methods"`
	Results  []string `json:"results"`
}

var studioAbout = aboutContent{
	Title: "Functional Activity Prediction for Class A GPCR Ligands",
	Authors: []string{
		"Sivanesan Dakshanamurthy",
		"Sahith Mada",
		"Joshua Mathew",
	},
	Abstract: "This project builds machine learning models to classify GPCR ligands as agonist, " +
		"antagonist, or inactive by integrating ligand descriptors, receptor pocket features, " +
		"and interaction terms.",
	Keywords: []string{"GPCR", "functional activity", "ligand descriptors", "receptor pocket", "stacking ensemble"},
	Methods: []string{
		"Ligands curated for 69 human Class A GPCRs from ChEMBL",
		"RDKit and Mordred used for 2D/3D descriptors",
		"Receptor pocket features derived from 3D structures",
		"Feature matrix combines ligand, receptor, and interaction terms",
		"Splits: random stratified, Bemis-Murcko scaffold, and LORO",
		"Models: Random Forest, XGBoost, LightGBM, and stacking ensemble",
	},
	Results: []string{
		"Random stratified split: macro F1 around 0.80-0.81 for base learners; AUC near 0.97",
		"Scaffold split: macro F1 around 0.83-0.84; AUC around 0.97",
		"LORO split: macro F1 around 0.71-0.72; AUC around 0.92",
		"Stacked model improves precision and F1 on independent ligand validation",
	},
}

// About handles GET /api/v1/studio/about.
func (h *StudioHandler) About(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, studioAbout)
}
