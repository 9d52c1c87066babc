package catalog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBookSemesters(t *testing.T) {
	sems := BookSemesters()
	assert.Len(t, sems, 8)
	assert.Equal(t, "SEM-1", sems[0])
	assert.Equal(t, "SEM-8", sems[7])

	// mutating the returned slice must not affect the catalog
	sems[0] = "SEM-X"
	assert.Equal(t, "SEM-1", BookSemesters()[0])
}

func TestBookSubjects(t *testing.T) {
	sem1, err := BookSubjects("SEM-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, sem1)

	sem2, err := BookSubjects("SEM-2")
	assert.NoError(t, err)
	assert.Equal(t, sem1, sem2) // first-year semesters share the list

	// known semester without a curated list
	sem3, err := BookSubjects("SEM-3")
	assert.NoError(t, err)
	assert.Empty(t, sem3)

	// unknown label
	_, err = BookSubjects("SEM-9")
	assert.Equal(t, ErrNotFound, errors.Cause(err))
}

func TestIsBookSemester(t *testing.T) {
	assert.True(t, IsBookSemester("SEM-4"))
	assert.False(t, IsBookSemester("SEM-0"))
	assert.False(t, IsBookSemester(""))
}
