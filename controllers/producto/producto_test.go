package productoControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
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

func TestGetProductoByIDNoEncontrado(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .* FROM .producto.`).
		WillReturnRows(mock.NewRows([]string{"id", "nombre", "prec", "foto", "cantidad", "id_descr"}))

	r := gin.New()
	r.GET("/api/productos/:id", GetProductoByID(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/productos/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductoByIDInvalido(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := newTestDB(t)

	r := gin.New()
	r.GET("/api/productos/:id", GetProductoByID(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/productos/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOfertasMarcaPrecioOriginal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .* FROM .producto. JOIN oferta`).
		WillReturnRows(mock.NewRows([]string{"id", "nombre", "prec", "foto", "cantidad", "id_descr"}).
			AddRow(4, "figura", 100.00, "figura.png", 3, 2))
	mock.ExpectQuery(`SELECT .* FROM .descripcion.`).
		WillReturnRows(mock.NewRows([]string{"id", "descripcion"}).
			AddRow(2, "figura de colección"))

	r := gin.New()
	r.GET("/api/ofertas", GetOfertas(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ofertas", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var ofertas []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ofertas))
	require.Len(t, ofertas, 1)
	assert.Equal(t, 125.00, ofertas[0]["precio_original"])
}
