// Package http provides http transport for qualifier lookups
package http

import (
	stdhttp "net/http"

	"qualifiers/internal/core/qualifier"
	phttp "qualifiers/internal/platform/net/http"
	svc "qualifiers/internal/services/qualifiers/service"
)

// DefaultPageSize applies when page_size is absent
const DefaultPageSize = 50

// Register mounts qualifier endpoints on the given router
func Register(r phttp.Router, s svc.Service) {
	h := &handlers{svc: s}
	phttp.GetJSON(r, "/examinees/{id}", h.examinee)
	phttp.GetJSON(r, "/test-centers/{code}", h.testCenter)
	phttp.GetResponse(r, "/test-centers/{code}/examinees", h.examinees)
	phttp.GetJSON(r, "/stats", h.stats)
}

type handlers struct{ svc svc.Service }

// @Summary Examinee by application id
// @Tags Qualifiers
// @Produce json
// @Param id path string true "7 digit application id"
// @Success 200 {object} domain.Examinee "ok"
// @Failure 422 {object} phttp.Envelope "malformed id"
// @Failure 404 {object} phttp.Envelope "not found"
// @Router /examinees/{id} [get]
func (h *handlers) examinee(r *stdhttp.Request) (any, error) {
	id, err := phttp.PathUint(r, "id", qualifier.MatchApplicationID)
	if err != nil {
		return nil, err
	}
	return h.svc.Examinee(r.Context(), id)
}

// @Summary Test center with examinee count
// @Tags Qualifiers
// @Produce json
// @Param code path string true "4 digit test center code"
// @Success 200 {object} domain.TestCenter "ok"
// @Failure 404 {object} phttp.Envelope "not found"
// @Router /test-centers/{code} [get]
func (h *handlers) testCenter(r *stdhttp.Request) (any, error) {
	code, err := phttp.PathUint(r, "code", qualifier.MatchTestCenterCode)
	if err != nil {
		return nil, err
	}
	return h.svc.TestCenter(r.Context(), uint32(code))
}

// @Summary Examinees of a test center ordered by room and seat
// @Tags Qualifiers
// @Produce json
// @Param code path string true "4 digit test center code"
// @Param page query int false "1 based page" default(1)
// @Param page_size query int false "page size, at most 200" default(50)
// @Success 200 {array} domain.Examinee "ok"
// @Failure 400 {object} phttp.Envelope "bad paging"
// @Router /test-centers/{code}/examinees [get]
func (h *handlers) examinees(r *stdhttp.Request) phttp.Response {
	code, err := phttp.PathUint(r, "code", qualifier.MatchTestCenterCode)
	if err != nil {
		return phttp.Error(err)
	}
	page, err := phttp.QueryInt(r, "page", 1)
	if err != nil {
		return phttp.Error(err)
	}
	size, err := phttp.QueryInt(r, "page_size", DefaultPageSize)
	if err != nil {
		return phttp.Error(err)
	}
	out, err := h.svc.ExamineesByCenter(r.Context(), uint32(code), page, size)
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.List(out.Items, int(out.Total), out.Page, out.PageSize)
}

// @Summary Stored examinee and test center totals
// @Tags Qualifiers
// @Produce json
// @Success 200 {object} domain.Counts "ok"
// @Router /stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Counts(r.Context())
}

