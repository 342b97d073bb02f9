package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sysu-ecnc-dev/employee-simulator/backend/internal/domain"
)

func (h *Handler) GenerateEmployeeDataset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Count int `json:"count" validate:"required,gte=1"`
		Age   struct {
			Min float64 `json:"min" validate:"gte=0"`
			Max float64 `json:"max" validate:"gtefield=Min"`
		} `json:"age"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.Count > h.config.Simulator.MaxCount {
		h.errorResponse(w, r, fmt.Sprintf("单次最多生成 %d 个员工", h.config.Simulator.MaxCount))
		return
	}

	dataset, err := h.simulator.BuildDataset(req.Count, req.Age.Min, req.Age.Max)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "生成员工数据集成功", dataset)
}
