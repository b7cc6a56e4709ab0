package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SERMEX0/sermex-backend/internal/domain"
)

// Compile-time interface assertions.
var (
	_ UserRepository       = (*PostgresUserRepo)(nil)
	_ ProductRepository    = (*PostgresProductRepo)(nil)
	_ EvaluationRepository = (*PostgresEvaluationRepo)(nil)
	_ LogisticsRepository  = (*PostgresLogisticsRepo)(nil)
)

const pgUniqueViolation = "23505"

// PostgresUserRepo implements UserRepository over pgx.
type PostgresUserRepo struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepo(pool *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{db: pool}
}

const selectUserByCorreoSQL = `SELECT id, correo, password, created_at, updated_at
FROM usuarios WHERE correo = $1`

func (r *PostgresUserRepo) GetByCorreo(ctx context.Context, correo string) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, selectUserByCorreoSQL, correo).Scan(
		&user.ID, &user.Correo, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user by correo: %w", err)
	}
	return user, nil
}

const selectUserByIDSQL = `SELECT id, correo, password, created_at, updated_at
FROM usuarios WHERE id = $1`

func (r *PostgresUserRepo) GetByID(ctx context.Context, userID int64) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, selectUserByIDSQL, userID).Scan(
		&user.ID, &user.Correo, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

const insertUserSQL = `INSERT INTO usuarios (correo, password)
VALUES ($1, $2)
RETURNING id, correo, password, created_at, updated_at`

func (r *PostgresUserRepo) Create(ctx context.Context, correo, passwordHash string) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, insertUserSQL, correo, passwordHash).Scan(
		&user.ID, &user.Correo, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.User{}, domain.ErrDuplicateEmail
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

const updatePasswordSQL = `UPDATE usuarios SET password = $1, updated_at = NOW()
WHERE id = $2`

func (r *PostgresUserRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx, updatePasswordSQL, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// PostgresProductRepo implements ProductRepository.
type PostgresProductRepo struct {
	db *pgxpool.Pool
}

func NewPostgresProductRepo(pool *pgxpool.Pool) *PostgresProductRepo {
	return &PostgresProductRepo{db: pool}
}

const selectProductSQL = `SELECT id, nombre, descripcion, categoria, imagen_url, created_at
FROM productos WHERE id = $1`

func (r *PostgresProductRepo) GetByID(ctx context.Context, productID int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRow(ctx, selectProductSQL, productID).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Categoria, &p.ImagenURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// PostgresEvaluationRepo implements EvaluationRepository.
type PostgresEvaluationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresEvaluationRepo(pool *pgxpool.Pool) *PostgresEvaluationRepo {
	return &PostgresEvaluationRepo{db: pool}
}

const insertEvaluationSQL = `INSERT INTO evaluaciones_productos
(usuario_id, producto_id, puntuacion, comentario, sugerencias)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

func (r *PostgresEvaluationRepo) Insert(ctx context.Context, eval domain.Evaluation) (domain.Evaluation, error) {
	err := r.db.QueryRow(ctx, insertEvaluationSQL,
		eval.UsuarioID, eval.ProductoID, eval.Puntuacion, eval.Comentario, eval.Sugerencias,
	).Scan(&eval.ID, &eval.CreatedAt)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("insert evaluation: %w", err)
	}
	return eval, nil
}

const listEvaluationsSQL = `SELECT e.id, e.usuario_id, e.producto_id, e.puntuacion,
e.comentario, e.sugerencias, e.created_at, u.correo
FROM evaluaciones_productos e
JOIN usuarios u ON e.usuario_id = u.id
WHERE e.producto_id = $1
ORDER BY e.created_at DESC`

func (r *PostgresEvaluationRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Evaluation, error) {
	rows, err := r.db.Query(ctx, listEvaluationsSQL, productID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	evals := make([]domain.Evaluation, 0)
	for rows.Next() {
		var e domain.Evaluation
		if err := rows.Scan(
			&e.ID, &e.UsuarioID, &e.ProductoID, &e.Puntuacion,
			&e.Comentario, &e.Sugerencias, &e.CreatedAt, &e.Correo,
		); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		evals = append(evals, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return evals, nil
}

// PostgresLogisticsRepo implements LogisticsRepository.
type PostgresLogisticsRepo struct {
	db *pgxpool.Pool
}

func NewPostgresLogisticsRepo(pool *pgxpool.Pool) *PostgresLogisticsRepo {
	return &PostgresLogisticsRepo{db: pool}
}

const listTicketsSQL = `SELECT id, rma_id, correo_cliente, producto, estado, detalles,
fecha_creacion, fecha_actualizacion
FROM logistica
ORDER BY fecha_creacion DESC`

func (r *PostgresLogisticsRepo) List(ctx context.Context) ([]domain.LogisticsTicket, error) {
	rows, err := r.db.Query(ctx, listTicketsSQL)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

const listTicketsByCorreoSQL = `SELECT id, rma_id, correo_cliente, producto, estado, detalles,
fecha_creacion, fecha_actualizacion
FROM logistica
WHERE correo_cliente = $1
ORDER BY fecha_creacion DESC`

func (r *PostgresLogisticsRepo) ListByCorreo(ctx context.Context, correo string) ([]domain.LogisticsTicket, error) {
	rows, err := r.db.Query(ctx, listTicketsByCorreoSQL, correo)
	if err != nil {
		return nil, fmt.Errorf("list tickets by correo: %w", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

const updateTicketSQL = `UPDATE logistica SET
estado = $1,
detalles = $2,
fecha_actualizacion = CURRENT_TIMESTAMP
WHERE rma_id = $3`

func (r *PostgresLogisticsRepo) UpdateStatus(ctx context.Context, rmaID, estado, detalles string) error {
	tag, err := r.db.Exec(ctx, updateTicketSQL, estado, detalles, rmaID)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func scanTickets(rows pgx.Rows) ([]domain.LogisticsTicket, error) {
	tickets := make([]domain.LogisticsTicket, 0)
	for rows.Next() {
		var t domain.LogisticsTicket
		if err := rows.Scan(
			&t.ID, &t.RMAID, &t.CorreoCliente, &t.Producto, &t.Estado, &t.Detalles,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan tickets: %w", err)
	}
	return tickets, nil
}
