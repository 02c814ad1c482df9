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

func TestSupplierCreate_NombreObligatorio(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierCreate_ContactoVacioEsNil(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	out, err := uc.Create(context.Background(), dto.CreateSupplierRequest{
		Name:  "Distribuidora Andina",
		Email: "ventas@andina.example",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Email)
	assert.Equal(t, "ventas@andina.example", *out.Email)
	assert.Nil(t, out.Phone, "campos de contacto vacíos quedan NULL")
	assert.Nil(t, out.ContactPerson)
}

func TestSupplierUpdate_NilNoTocaVacioLimpia(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{
		Name:  "Distribuidora Andina",
		Email: "ventas@andina.example",
		Phone: "+57 301 555 0101",
	})
	require.NoError(t, err)

	// Email nil → intacto; Phone "" → se limpia a NULL.
	empty := ""
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateSupplierRequest{
		Phone: &empty,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Email, "campo nil en el patch no debe tocarse")
	assert.Equal(t, "ventas@andina.example", *out.Email)
	assert.Nil(t, out.Phone, "string vacío en el patch limpia el campo")
}

func TestSupplierUpdate_NombreNoPuedeQuedarVacio(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Proveedor"})
	require.NoError(t, err)

	empty := " "
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateSupplierRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())
	name := "X"

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateSupplierRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierDelete_IDInexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
