package pets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"pet-api/internal/middleware"
	"pet-api/internal/platform/httpjson"
	"pet-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	maxBodyBytes = 1 << 20

	msgPetNotFound   = "Pet not found"
	msgMissingFields = "Missing required fields: name and species"
	msgMissingJSON   = "Missing JSON data"
	msgInvalidJSON   = "Invalid JSON body"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// createPetRequest es el cuerpo para crear una mascota; ambos campos son obligatorios.
type createPetRequest struct {
	Name    *string `json:"name"`
	Species *string `json:"species"`
}

// updatePetRequest es el cuerpo del PUT parcial: campo omitido = no tocar.
type updatePetRequest struct {
	Name    *string `json:"name"`
	Species *string `json:"species"`
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas ordenadas por id ascendente.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			internalError(w, r, log, "list pets failed", err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Description Devuelve una mascota por id.
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			httpjson.WriteNotFound(w, msgPetNotFound)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, "get pet failed", err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota. name y species son obligatorios; el id lo asigna el storage.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		present, err := decodeBody(w, r, &req)
		if err != nil {
			httpjson.WriteBadRequest(w, msgInvalidJSON)
			return
		}
		if !present {
			httpjson.WriteBadRequest(w, msgMissingFields)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.WriteBadRequest(w, msgMissingFields)
				return
			}
			internalError(w, r, log, "create pet failed", err)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Update parcial: solo se sobrescriben los campos enviados. Un objeto vacío no cambia nada.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			httpjson.WriteNotFound(w, msgPetNotFound)
			return
		}

		// Existencia primero: un id desconocido es 404 aunque el body sea inválido.
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, r, log, "get pet failed", err)
			return
		}

		var req updatePetRequest
		present, err := decodeBody(w, r, &req)
		if err != nil {
			httpjson.WriteBadRequest(w, msgInvalidJSON)
			return
		}
		if !present {
			httpjson.WriteBadRequest(w, msgMissingJSON)
			return
		}

		updated, err := svc.Update(r.Context(), id, UpdateInput{
			Name:    req.Name,
			Species: req.Species,
		})
		if err != nil {
			writeServiceError(w, r, log, "update pet failed", err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Borrado físico; el id no se reutiliza.
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} httpjson.MessageResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			httpjson.WriteNotFound(w, msgPetNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, log, "delete pet failed", err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageResponse{
			Message: fmt.Sprintf("Pet %d deleted", id),
		})
	}
}

// petIDParam: ids no numéricos (u overflow de int64) se tratan como ruta inexistente.
func petIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeBody devuelve present=false si no hay body o el body es "null".
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (bool, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return false, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, err
	}
	return true, nil
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	if errors.Is(err, ErrNotFound) {
		httpjson.WriteNotFound(w, msgPetNotFound)
		return
	}
	internalError(w, r, log, msg, err)
}

func internalError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	log.Error(msg, map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"error":      err.Error(),
	})
	httpjson.WriteInternalError(w)
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
	}
}
