package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/breutech/epcqr/internal/domain/epc"
	"github.com/breutech/epcqr/internal/domain/qrcode"
	"github.com/breutech/epcqr/internal/domain/validation"
	"github.com/breutech/epcqr/internal/usecase/generateogm"
	"github.com/breutech/epcqr/internal/usecase/generateqr"
)

const maxRequestBody = 16 << 10

type Handler struct {
	generateQRUC  *generateqr.UseCase
	generateOGMUC *generateogm.UseCase
	registry      epc.Registry
	maxQRSize     int
}

func NewHandler(
	generateQRUC *generateqr.UseCase,
	generateOGMUC *generateogm.UseCase,
	registry epc.Registry,
	maxQRSize int,
) *Handler {
	return &Handler{
		generateQRUC:  generateQRUC,
		generateOGMUC: generateOGMUC,
		registry:      registry,
		maxQRSize:     maxQRSize,
	}
}

type PaymentRequest struct {
	IBAN       string `json:"iban"`
	BIC        string `json:"bic,omitempty"`
	Name       string `json:"name"`
	Amount     string `json:"amount,omitempty"`
	Purpose    string `json:"purpose,omitempty"`
	Reference  string `json:"reference,omitempty"`
	Remittance string `json:"remittance,omitempty"`
	Info       string `json:"info,omitempty"`
}

type ValidationErrorBody struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

type ErrorResponse struct {
	Error ValidationErrorBody `json:"error"`
}

type OGMResponse struct {
	Base        string `json:"base"`
	CheckDigits string `json:"check_digits"`
	Formatted   string `json:"formatted"`
}

type CheckIssueBody struct {
	Line  int    `json:"line"`
	Field string `json:"field"`
	Code  string `json:"code"`
}

type CheckResponse struct {
	Valid                bool             `json:"valid"`
	RepairedTrailingLine bool             `json:"repaired_trailing_line"`
	OGMDetected          bool             `json:"ogm_detected"`
	Issues               []CheckIssueBody `json:"issues"`
}

// HandlePayload validates a payment request and returns the assembled
// payload as plain text.
func (h *Handler) HandlePayload(w http.ResponseWriter, r *http.Request) {
	payment, ok := h.decodePayment(w, r)
	if !ok {
		return
	}

	payload, err := h.generateQRUC.Payload(payment)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, payload)
}

// HandleQR validates a payment request and returns the rendered PNG.
// Rendering knobs come from query parameters: ec (L|M|Q|H), size
// (pixels), no_border.
func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	payment, ok := h.decodePayment(w, r)
	if !ok {
		return
	}

	opts, err := h.parseOptions(r)
	if err != nil {
		http.Error(w, `{"error":{"field":"options","code":"range_violation"}}`, http.StatusBadRequest)
		return
	}

	png, err := h.generateQRUC.Execute(generateqr.Request{
		Payment: payment,
		Options: opts,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="epc-qr-`+uuid.NewString()+`.png"`)
	_, _ = w.Write(png)
}

// HandleCheckPayload re-validates a pasted payload and returns the
// full diagnostic report.
func (h *Handler) HandleCheckPayload(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		http.Error(w, `{"error":{"field":"payload","code":"malformed_structure"}}`, http.StatusBadRequest)
		return
	}

	report := epc.CheckPayload(string(raw), h.registry)

	resp := CheckResponse{
		Valid:                report.Valid,
		RepairedTrailingLine: report.RepairedTrailingLine,
		OGMDetected:          report.OGMDetected,
		Issues:               make([]CheckIssueBody, 0, len(report.Issues)),
	}
	for _, issue := range report.Issues {
		resp.Issues = append(resp.Issues, CheckIssueBody{
			Line:  issue.Line,
			Field: issue.Field,
			Code:  string(issue.Code),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleOGM generates a Belgian structured communication; the optional
// base query parameter seeds it.
func (h *Handler) HandleOGM(w http.ResponseWriter, r *http.Request) {
	resp, err := h.generateOGMUC.Execute(r.URL.Query().Get("base"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OGMResponse{
		Base:        resp.Base,
		CheckDigits: resp.CheckDigits,
		Formatted:   resp.Formatted,
	})
}

// HandlePurposes lists the purpose-code registry.
func (h *Handler) HandlePurposes(w http.ResponseWriter, r *http.Request) {
	purposes := make(map[string]string, len(h.registry))
	for _, code := range h.registry.Codes() {
		purposes[code] = h.registry[code]
	}
	writeJSON(w, http.StatusOK, purposes)
}

func (h *Handler) decodePayment(w http.ResponseWriter, r *http.Request) (epc.PaymentRequest, bool) {
	var req PaymentRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		http.Error(w, `{"error":{"field":"body","code":"malformed_structure"}}`, http.StatusBadRequest)
		return epc.PaymentRequest{}, false
	}

	payment := epc.PaymentRequest{
		IBAN:                req.IBAN,
		BIC:                 req.BIC,
		BeneficiaryName:     req.Name,
		PurposeCode:         req.Purpose,
		RemittanceText:      req.Remittance,
		StructuredReference: req.Reference,
		AdditionalInfo:      req.Info,
	}

	if req.Amount != "" {
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			h.writeError(w, validation.NewError(epc.FieldAmount, validation.CodeMalformedStructure))
			return epc.PaymentRequest{}, false
		}
		payment.Amount = &amount
	}

	return payment, true
}

func (h *Handler) parseOptions(r *http.Request) (qrcode.Options, error) {
	q := r.URL.Query()

	level, err := qrcode.ParseRecoveryLevel(q.Get("ec"))
	if err != nil {
		return qrcode.Options{}, err
	}

	opts := qrcode.Options{
		Level:         level,
		DisableBorder: q.Get("no_border") == "true",
	}

	if sizeStr := q.Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 || size > h.maxQRSize {
			return qrcode.Options{}, errors.New("invalid size")
		}
		opts.Size = size
	}

	return opts, nil
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: ValidationErrorBody{Field: verr.Field, Code: string(verr.Code)},
		})
		return
	}
	http.Error(w, `{"error":{"field":"","code":"internal"}}`, http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
