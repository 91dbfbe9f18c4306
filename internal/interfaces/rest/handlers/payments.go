package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

func (h *PaymentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetAll(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToAPIPayments(payments))
}

func (h *PaymentHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	payment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToAPIPayment(payment))
}

func (h *PaymentHandler) HandleGetByReference(w http.ResponseWriter, r *http.Request) {
	reference, err := pathReference(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	payment, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToAPIPayment(payment))
}

func (h *PaymentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	payment, err := decodePayment(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), payment)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	w.Header().Set("Location", "/payments/"+strconv.FormatInt(created.ID, 10))
	rest.WriteJSON(w, http.StatusCreated, rest.ToAPIPayment(created))
}

func (h *PaymentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	payment, err := decodePayment(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	if payment == nil {
		rest.WriteError(w, domain.NewNilPaymentError(), h.logger)
		return
	}
	if payment.ID != id {
		rest.WriteError(w, domain.NewIDMismatchError(id, payment.ID), h.logger)
		return
	}

	updated, err := h.service.Update(r.Context(), payment)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToAPIPayment(updated))
}

// HandleDelete always soft-deletes.
func (h *PaymentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id, true); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func pathID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, application.NewInvalidParameterError("id", err)
	}
	return id, nil
}

// pathReference returns the reference segment decoded exactly once. chi
// matches on r.URL.RawPath when it is set and on the decoded r.URL.Path
// otherwise, so the param is only still escaped in the first case.
func pathReference(r *http.Request) (string, error) {
	reference := chi.URLParam(r, "reference")
	if r.URL.RawPath == "" {
		return reference, nil
	}
	unescaped, err := url.PathUnescape(reference)
	if err != nil {
		return "", application.NewInvalidParameterError("reference", err)
	}
	return unescaped, nil
}

// decodePayment reads the request body. A JSON null body decodes to a nil
// payment without error.
func decodePayment(r *http.Request) (*domain.Payment, error) {
	var body *rest.Payment
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, application.NewInvalidInputError(err)
	}
	return rest.ToDomainPayment(body), nil
}
