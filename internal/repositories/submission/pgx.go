package submission

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/repositories"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("SubmissionRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, record domain.SubmissionRecord) error {
	query, args, err := repositories.SqBuilder.
		Insert("submissions").
		Columns("post_id", "submission_fullname", "submission_permalink", "comment_fullname", "comment_permalink", "created_at").
		Values(
			record.PostID,
			record.Submission.Fullname,
			record.Submission.Permalink,
			record.Comment.Fullname,
			record.Comment.Permalink,
			time.Now(),
		).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (p *Pgx) GetByPostID(ctx context.Context, postID string) (*domain.SubmissionRecord, error) {
	query, args, err := repositories.SqBuilder.
		Select("post_id", "submission_fullname", "submission_permalink", "comment_fullname", "comment_permalink", "created_at").
		From("submissions").
		Where(sq.Eq{"post_id": postID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var record domain.SubmissionRecord
	err = p.pg.QueryRow(ctx, query, args...).Scan(
		&record.PostID,
		&record.Submission.Fullname,
		&record.Submission.Permalink,
		&record.Comment.Fullname,
		&record.Comment.Permalink,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (p *Pgx) GetLatest(ctx context.Context, count int) ([]*domain.SubmissionRecord, error) {
	query, args, err := repositories.SqBuilder.
		Select("post_id", "submission_fullname", "submission_permalink", "comment_fullname", "comment_permalink", "created_at").
		From("submissions").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.SubmissionRecord
	for rows.Next() {
		var record domain.SubmissionRecord
		if err := rows.Scan(
			&record.PostID,
			&record.Submission.Fullname,
			&record.Submission.Permalink,
			&record.Comment.Fullname,
			&record.Comment.Permalink,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *Pgx) Exists(ctx context.Context, postID string) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Select("1").
		From("submissions").
		Where(sq.Eq{"post_id": postID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	var one int
	err = p.pg.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
