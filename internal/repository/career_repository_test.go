package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerRepository_GetAllCareers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCareerRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM careers ORDER BY name, id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "required_skills", "description", "salary_range", "created_at", "updated_at"}).
			AddRow("c1", "Data Analyst", `["Python","SQL","Excel"]`, "Analyzes data", "$60k-$90k", now, now).
			AddRow("c2", "Generalist", `[]`, nil, nil, now, now))

	careers, err := repo.GetAllCareers(context.Background())
	require.NoError(t, err)
	require.Len(t, careers, 2)
	assert.Equal(t, []string{"Python", "SQL", "Excel"}, careers[0].RequiredSkills)
	assert.Equal(t, "$60k-$90k", careers[0].SalaryRange)
	assert.Empty(t, careers[1].RequiredSkills)
	assert.Empty(t, careers[1].SalaryRange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareerRepository_GetCareerByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCareerRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM careers WHERE id = :1`)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "required_skills", "description", "salary_range", "created_at", "updated_at"}).
			AddRow("c1", "Data Analyst", `["Python"]`, "Analyzes data", "$60k-$90k", now, now))

	career, err := repo.GetCareerByID(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, career)
	assert.Equal(t, "Data Analyst", career.Name)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM careers WHERE id = :1`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "required_skills", "description", "salary_range", "created_at", "updated_at"}))

	career, err = repo.GetCareerByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, career)
	assert.NoError(t, mock.ExpectationsWereMet())
}
