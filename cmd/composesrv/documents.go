package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chinmay-sawant/legalcompose/internal/config"
	"github.com/chinmay-sawant/legalcompose/internal/errs"
	"github.com/chinmay-sawant/legalcompose/internal/model"
	"github.com/chinmay-sawant/legalcompose/internal/pipeline"
	"github.com/chinmay-sawant/legalcompose/internal/sink"
)

// composeRequest is the JSON body of POST /v1/documents.
type composeRequest struct {
	DocumentType string   `json:"documentType" binding:"required"`
	Content      string   `json:"content" binding:"required"`
	Strict       bool     `json:"strict"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Subject      string   `json:"subject"`
	Keywords     []string `json:"keywords"`
}

// handleCompose returns the raw PDF body and mirrors the public result
// descriptor in X-Page-Count, X-Signature-Block-Count and X-Warning-Count
// response headers, so a caller need not parse the PDF to learn
// page/warning counts.
func handleCompose(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req composeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		dt, err := model.ParseDocumentType(req.DocumentType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		lines := strings.Split(strings.ReplaceAll(req.Content, "\r\n", "\n"), "\n")

		out := sink.NewBuffer()
		opts := model.Options{
			Strict:              req.Strict || cfg.Strict,
			PageNumberFormat:    cfg.PageNumberFormatModel(),
			FormattingOverrides: cfg.FormattingOverridesModel(),
			Metadata: model.Metadata{
				Title: req.Title, Author: req.Author, Subject: req.Subject, Keywords: req.Keywords,
			},
		}

		result, err := pipeline.Compose(lines, dt, out, opts)
		if err != nil {
			status := http.StatusInternalServerError
			var typed *errs.Error
			if asErrsError(err, &typed) {
				switch typed.Code {
				case errs.CodeInvalidDocumentType, errs.CodeEmptyContent, errs.CodeInvalidMarkerID:
					status = http.StatusBadRequest
				case errs.CodeSignatureOversized:
					status = http.StatusUnprocessableEntity
				}
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		compositionWarnings.Add(float64(len(result.Warnings)))

		artifact, err := out.Finish()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("X-Page-Count", strconv.Itoa(result.PageCount))
		c.Header("X-Signature-Block-Count", strconv.Itoa(result.SignatureBlockCount))
		c.Header("X-Warning-Count", strconv.Itoa(len(result.Warnings)))
		c.Data(http.StatusOK, "application/pdf", artifact.Bytes)
	}
}

func asErrsError(err error, target **errs.Error) bool {
	if e, ok := err.(*errs.Error); ok {
		*target = e
		return true
	}
	return false
}
