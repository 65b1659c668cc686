package ventaControllers

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func expectCarritoSelect(mock sqlmock.Sqlmock, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT .* FROM .carrito. JOIN producto`).
		WithArgs(1).
		WillReturnRows(rows)
}

func carritoRows(mock sqlmock.Sqlmock) *sqlmock.Rows {
	return mock.NewRows([]string{"id_pro", "cantidad", "prec"}).
		AddRow(10, 2, 10.00).
		AddRow(20, 1, 5.00)
}

func TestCrearVentaDesdeCarrito(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	expectCarritoSelect(mock, carritoRows(mock))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .venta.`).
		WillReturnRows(mock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO .venta.`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 25.00, 1).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`INSERT INTO .detalle_venta.`).
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec(`DELETE FROM .carrito.`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	venta, err := CrearVentaDesdeCarrito(db, 1)
	require.NoError(t, err)

	assert.Equal(t, 7, venta.ID)
	assert.Equal(t, 25.00, venta.Total)
	assert.Equal(t, 1, venta.IDCli)
	assert.GreaterOrEqual(t, venta.Folio, folioMin)
	assert.LessOrEqual(t, venta.Folio, folioMax)

	require.Len(t, venta.Detalles, 2)
	assert.Equal(t, 20.00, venta.Detalles[0].Subtotal)
	assert.Equal(t, 2, venta.Detalles[0].Cant)
	assert.Equal(t, 10.00, venta.Detalles[0].Prec)
	assert.Equal(t, 7, venta.Detalles[0].IDVent)
	assert.Equal(t, 5.00, venta.Detalles[1].Subtotal)
	assert.Equal(t, 7, venta.Detalles[1].IDVent)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrearVentaCarritoVacio(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	expectCarritoSelect(mock, mock.NewRows([]string{"id_pro", "cantidad", "prec"}))
	mock.ExpectRollback()

	venta, err := CrearVentaDesdeCarrito(db, 1)
	assert.Nil(t, venta)
	assert.ErrorIs(t, err, ErrCarritoVacio)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrearVentaRollbackOnDetalleFailure(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	expectCarritoSelect(mock, carritoRows(mock))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .venta.`).
		WillReturnRows(mock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO .venta.`).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`INSERT INTO .detalle_venta.`).
		WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	venta, err := CrearVentaDesdeCarrito(db, 1)
	assert.Nil(t, venta)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCarritoVacio)

	// No sale header, line items or cart deletion survive the rollback.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrearVentaFolioCollisionRetries(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	expectCarritoSelect(mock, carritoRows(mock))
	// First draw collides with an existing folio, the second one is free.
	mock.ExpectQuery(`SELECT count\(\*\) FROM .venta.`).
		WillReturnRows(mock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .venta.`).
		WillReturnRows(mock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO .venta.`).
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectExec(`INSERT INTO .detalle_venta.`).
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec(`DELETE FROM .carrito.`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	venta, err := CrearVentaDesdeCarrito(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, venta.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
