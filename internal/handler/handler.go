package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/employee-simulator/backend/internal/config"
	"github.com/sysu-ecnc-dev/employee-simulator/backend/internal/simulation"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	simulator  *simulation.Simulator
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, sim *simulation.Simulator) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		simulator:  sim,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/employees", func(r chi.Router) {
		r.Post("/generate", h.GenerateEmployeeDataset)
	})
}
