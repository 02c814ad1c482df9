package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidManiIbrahim/keeper-api/internal/application/dto"
	"github.com/DavidManiIbrahim/keeper-api/internal/application/usecase"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
)

func TestCategoryCreate_NombreObligatorio(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	// Solo espacios cuenta como vacío; la validación corta antes del repo.
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.created, "una entrada inválida no debe llegar al repositorio")
}

func TestCategoryCreate_RecortaEspaciosYGuardaDescripcion(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:        "  Electrónica  ",
		Description: "Dispositivos",
	})
	require.NoError(t, err)
	assert.Equal(t, "Electrónica", out.Name)
	require.NotNil(t, out.Description)
	assert.Equal(t, "Dispositivos", *out.Description)
	assert.NotEmpty(t, out.ID)
	require.Len(t, repo.created, 1)
}

func TestCategoryCreate_DescripcionVaciaEsNil(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Oficina"})
	require.NoError(t, err)
	assert.Nil(t, out.Description, "descripción vacía debe almacenarse como NULL")
}

func TestCategoryGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_IDInexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"eliminar un ID inexistente nunca es éxito silencioso")
}
