package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/cosmetica-saas/pkg/logger"
)

type migration struct {
	version string
	up      string
}

// migrations se aplican en orden; cada una corre en su propia transacción y
// queda registrada en la tabla migrations.
var migrations = []migration{
	{
		version: "001_plans_companies_users",
		up: `
			CREATE EXTENSION IF NOT EXISTS pgcrypto;

			CREATE TABLE IF NOT EXISTS plans (
				id UUID PRIMARY KEY,
				nombre_plan VARCHAR(100) UNIQUE NOT NULL,
				precio DECIMAL(12,2) NOT NULL DEFAULT 0,
				limite_usuarios INTEGER NOT NULL,
				limite_productos INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS companies (
				id UUID PRIMARY KEY,
				nombre_empresa VARCHAR(255) NOT NULL,
				plan_id UUID NOT NULL REFERENCES plans(id),
				estado VARCHAR(20) NOT NULL DEFAULT 'activo',
				fecha_vencimiento TIMESTAMPTZ,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_companies_estado ON companies(estado);

			CREATE TABLE IF NOT EXISTS users (
				id UUID PRIMARY KEY,
				company_id UUID REFERENCES companies(id),
				nombre VARCHAR(255) NOT NULL,
				email VARCHAR(255) UNIQUE NOT NULL,
				password_hash VARCHAR(255) NOT NULL,
				rol VARCHAR(30) NOT NULL,
				estado VARCHAR(20) NOT NULL DEFAULT 'activo',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_users_company_id ON users(company_id);
		`,
	},
	{
		version: "002_catalog_inventory",
		up: `
			CREATE TABLE IF NOT EXISTS productos_globales (
				id UUID PRIMARY KEY,
				nombre_producto VARCHAR(255) NOT NULL,
				categoria VARCHAR(100),
				marca VARCHAR(100),
				codigo_base VARCHAR(50),
				descripcion TEXT,
				imagen_url TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);

			CREATE TABLE IF NOT EXISTS inventario_empresa (
				id UUID PRIMARY KEY,
				company_id UUID NOT NULL REFERENCES companies(id),
				producto_global_id UUID NOT NULL REFERENCES productos_globales(id),
				stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
				precio_compra DECIMAL(12,2) NOT NULL DEFAULT 0,
				precio_venta DECIMAL(12,2) NOT NULL DEFAULT 0,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				UNIQUE(company_id, producto_global_id)
			);
			CREATE INDEX IF NOT EXISTS idx_inventario_company_id ON inventario_empresa(company_id);
		`,
	},
	{
		version: "003_customers_sales",
		up: `
			CREATE TABLE IF NOT EXISTS clientes (
				id UUID PRIMARY KEY,
				company_id UUID NOT NULL REFERENCES companies(id),
				nombre VARCHAR(255) NOT NULL,
				telefono VARCHAR(30),
				email VARCHAR(255),
				saldo_pendiente DECIMAL(12,2) NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_clientes_company_id ON clientes(company_id);

			CREATE TABLE IF NOT EXISTS ventas (
				id UUID PRIMARY KEY,
				company_id UUID NOT NULL REFERENCES companies(id),
				cliente_id UUID REFERENCES clientes(id),
				monto_total DECIMAL(12,2) NOT NULL,
				monto_pagado DECIMAL(12,2) NOT NULL,
				estado VARCHAR(20) NOT NULL,
				fecha_venta TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_ventas_company_fecha ON ventas(company_id, fecha_venta DESC);

			CREATE TABLE IF NOT EXISTS detalle_ventas (
				id UUID PRIMARY KEY,
				venta_id UUID NOT NULL REFERENCES ventas(id),
				nro_linea INTEGER NOT NULL CHECK (nro_linea > 0),
				producto_global_id UUID NOT NULL REFERENCES productos_globales(id),
				cantidad INTEGER NOT NULL CHECK (cantidad > 0),
				precio_unitario DECIMAL(12,2) NOT NULL,
				descuento DECIMAL(12,2) NOT NULL DEFAULT 0,
				subtotal DECIMAL(12,2) NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_detalle_ventas_venta_id ON detalle_ventas(venta_id);
			CREATE UNIQUE INDEX IF NOT EXISTS uq_detalle_ventas_linea ON detalle_ventas(venta_id, nro_linea);

			CREATE TABLE IF NOT EXISTS cuentas_por_cobrar (
				id UUID PRIMARY KEY,
				venta_id UUID UNIQUE NOT NULL REFERENCES ventas(id),
				monto_adeudado DECIMAL(12,2) NOT NULL,
				fecha_vencimiento TIMESTAMPTZ NOT NULL,
				estado VARCHAR(20) NOT NULL DEFAULT 'pendiente',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);

			CREATE TABLE IF NOT EXISTS gastos (
				id UUID PRIMARY KEY,
				company_id UUID NOT NULL REFERENCES companies(id),
				descripcion VARCHAR(255) NOT NULL,
				categoria VARCHAR(100),
				monto DECIMAL(12,2) NOT NULL,
				fecha_gasto TIMESTAMPTZ NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_gastos_company_fecha ON gastos(company_id, fecha_gasto DESC);
		`,
	},
	{
		version: "004_consignaciones",
		up: `
			CREATE TABLE IF NOT EXISTS proveedoras (
				id UUID PRIMARY KEY,
				company_id UUID NOT NULL REFERENCES companies(id),
				nombre VARCHAR(255) NOT NULL,
				telefono VARCHAR(30),
				email VARCHAR(255),
				notas TEXT,
				activa BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_proveedoras_company_id ON proveedoras(company_id);

			CREATE TABLE IF NOT EXISTS consignaciones (
				id UUID PRIMARY KEY,
				company_id UUID NOT NULL REFERENCES companies(id),
				proveedora_id UUID NOT NULL REFERENCES proveedoras(id),
				producto_global_id UUID NOT NULL REFERENCES productos_globales(id),
				cantidad_recibida INTEGER NOT NULL CHECK (cantidad_recibida > 0),
				cantidad_disponible INTEGER NOT NULL CHECK (cantidad_disponible >= 0),
				precio_costo DECIMAL(12,2) NOT NULL DEFAULT 0,
				precio_venta_proveedora DECIMAL(12,2) NOT NULL,
				precio_venta_tuyo DECIMAL(12,2) NOT NULL,
				estado VARCHAR(20) NOT NULL DEFAULT 'activo',
				notas TEXT,
				fecha_recepcion TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_consignaciones_busqueda
				ON consignaciones(company_id, producto_global_id, estado, fecha_recepcion);
			CREATE INDEX IF NOT EXISTS idx_consignaciones_proveedora ON consignaciones(proveedora_id);

			CREATE TABLE IF NOT EXISTS ventas_consignacion (
				id UUID PRIMARY KEY,
				consignacion_id UUID NOT NULL REFERENCES consignaciones(id),
				venta_id UUID NOT NULL REFERENCES ventas(id),
				detalle_venta_id UUID NOT NULL REFERENCES detalle_ventas(id),
				cantidad INTEGER NOT NULL CHECK (cantidad > 0),
				precio_unitario_usado DECIMAL(12,2) NOT NULL,
				precio_venta_proveedora DECIMAL(12,2) NOT NULL,
				monto_a_reportar DECIMAL(12,2) NOT NULL,
				tu_ganancia DECIMAL(12,2) NOT NULL,
				liquidado BOOLEAN NOT NULL DEFAULT false,
				fecha_venta TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_ventas_consig_pendientes
				ON ventas_consignacion(consignacion_id) WHERE liquidado = false;
		`,
	},
	{
		version: "005_liquidaciones",
		up: `
			CREATE TABLE IF NOT EXISTS liquidaciones_proveedora (
				id UUID PRIMARY KEY,
				company_id UUID NOT NULL REFERENCES companies(id),
				proveedora_id UUID NOT NULL REFERENCES proveedoras(id),
				monto_total DECIMAL(12,2) NOT NULL,
				monto_pagado DECIMAL(12,2) NOT NULL DEFAULT 0,
				estado VARCHAR(20) NOT NULL DEFAULT 'pendiente',
				fecha_corte TIMESTAMPTZ NOT NULL,
				fecha_pago TIMESTAMPTZ,
				notas TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_liquidaciones_proveedora
				ON liquidaciones_proveedora(company_id, proveedora_id, fecha_corte DESC);

			CREATE TABLE IF NOT EXISTS liquidacion_detalles (
				id UUID PRIMARY KEY,
				liquidacion_id UUID NOT NULL REFERENCES liquidaciones_proveedora(id),
				consignacion_id UUID NOT NULL REFERENCES consignaciones(id),
				eventos_incluidos INTEGER NOT NULL,
				monto DECIMAL(12,2) NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_liq_detalles_liquidacion ON liquidacion_detalles(liquidacion_id);
		`,
	},
	{
		version: "006_seed_plans",
		up: `
			INSERT INTO plans (id, nombre_plan, precio, limite_usuarios, limite_productos)
			VALUES
				(gen_random_uuid(), 'Básico', 10, 2, 100),
				(gen_random_uuid(), 'Profesional', 25, 5, 500),
				(gen_random_uuid(), 'Empresarial', 50, 20, 5000)
			ON CONFLICT (nombre_plan) DO NOTHING;
		`,
	},
}

// RunMigrations aplica las migraciones pendientes sobre el pool dado.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(100) PRIMARY KEY,
			executed_at TIMESTAMPTZ NOT NULL
		)`); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	last, err := lastMigration(ctx, conn)
	if err != nil {
		return fmt.Errorf("read last migration: %w", err)
	}

	for _, m := range migrations {
		if m.version <= last {
			continue
		}
		log.Info().Str("version", m.version).Msg("aplicando migración")

		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", m.version, err)
		}
		if _, err := tx.Exec(ctx, m.up); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("run migration %s: %w", m.version, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO migrations (version, executed_at) VALUES ($1, $2)`,
			m.version, time.Now()); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("record migration %s: %w", m.version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration %s: %w", m.version, err)
		}
	}
	return nil
}

func lastMigration(ctx context.Context, conn *pgxpool.Conn) (string, error) {
	var version string
	err := conn.QueryRow(ctx,
		`SELECT version FROM migrations ORDER BY version DESC LIMIT 1`).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return version, nil
}
