package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func TestFilm_Validate(t *testing.T) {
	valid := Film{
		Name:        "Прибытие поезда",
		Description: "short",
		ReleaseDate: ptr(date(1896, time.January, 25)),
		Duration:    1,
	}

	tests := []struct {
		name    string
		modify  func(f *Film)
		wantErr bool
	}{
		{name: "корректный фильм", modify: func(f *Film) {}},
		{name: "пустое название", modify: func(f *Film) { f.Name = "   " }, wantErr: true},
		{name: "описание 200 символов", modify: func(f *Film) { f.Description = strings.Repeat("я", 200) }},
		{name: "описание 201 символ", modify: func(f *Film) { f.Description = strings.Repeat("a", 201) }, wantErr: true},
		{name: "дата релиза 1895-12-28", modify: func(f *Film) { f.ReleaseDate = ptr(date(1895, time.December, 28)) }},
		{name: "дата релиза 0001-01-01", modify: func(f *Film) { f.ReleaseDate = &time.Time{} }, wantErr: true},
		{name: "дата релиза 1895-12-27", modify: func(f *Film) { f.ReleaseDate = ptr(date(1895, time.December, 27)) }, wantErr: true},
		{name: "отрицательная продолжительность", modify: func(f *Film) { f.Duration = -1 }, wantErr: true},
		{name: "без необязательных полей", modify: func(f *Film) {
			f.Description = ""
			f.ReleaseDate = nil
			f.Duration = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.modify(&f)

			err := f.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidData)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFilm_ValidateCollectsAllViolations(t *testing.T) {
	err := Film{Name: "", Duration: -5}.Validate()

	require.ErrorIs(t, err, ErrInvalidData)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "duration")
}

func TestFilmPatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		patch   FilmPatch
		wantErr bool
	}{
		{name: "только id", patch: FilmPatch{ID: ptr[int64](1)}},
		{name: "без id", patch: FilmPatch{Name: ptr("name")}, wantErr: true},
		{name: "нулевой id", patch: FilmPatch{ID: ptr[int64](0)}, wantErr: true},
		{name: "пустое имя", patch: FilmPatch{ID: ptr[int64](1), Name: ptr("")}, wantErr: true},
		{name: "нулевая продолжительность", patch: FilmPatch{ID: ptr[int64](1), Duration: ptr(0)}, wantErr: true},
		{name: "ранняя дата", patch: FilmPatch{ID: ptr[int64](1), ReleaseDate: ptr(date(1800, time.January, 1))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidData)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUser_Validate(t *testing.T) {
	now = func() time.Time { return date(2024, time.June, 1) }
	t.Cleanup(func() { now = time.Now })

	valid := User{Email: "neo@matrix.io", Login: "neo", Birthday: ptr(date(1990, time.March, 11))}

	tests := []struct {
		name    string
		modify  func(u *User)
		wantErr bool
	}{
		{name: "корректный пользователь", modify: func(u *User) {}},
		{name: "пустой email", modify: func(u *User) { u.Email = " " }, wantErr: true},
		{name: "email без @", modify: func(u *User) { u.Email = "neo.matrix.io" }, wantErr: true},
		{name: "пустой логин", modify: func(u *User) { u.Login = "" }, wantErr: true},
		{name: "логин с пробелом", modify: func(u *User) { u.Login = "ne o" }, wantErr: true},
		{name: "логин с табом", modify: func(u *User) { u.Login = "ne\to" }, wantErr: true},
		{name: "день рождения сегодня", modify: func(u *User) { u.Birthday = ptr(date(2024, time.June, 1)) }},
		{name: "день рождения 0001-01-01", modify: func(u *User) { u.Birthday = &time.Time{} }},
		{name: "день рождения в будущем", modify: func(u *User) { u.Birthday = ptr(date(2024, time.June, 2)) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.modify(&u)

			err := u.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidData)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUser_NameSync(t *testing.T) {
	u := User{Email: "neo@matrix.io", Login: "neo"}
	u.FillDefaults()
	require.Equal(t, "neo", u.Name)

	u.Apply(UserPatch{ID: ptr[int64](1), Login: ptr("neo2")})
	assert.Equal(t, "neo2", u.Login)
	assert.Equal(t, "neo2", u.Name, "имя следует за логином, пока не изменено")

	u.Apply(UserPatch{ID: ptr[int64](1), Name: ptr("Neo Anderson")})
	u.Apply(UserPatch{ID: ptr[int64](1), Login: ptr("neo3")})
	assert.Equal(t, "neo3", u.Login)
	assert.Equal(t, "Neo Anderson", u.Name)
}

func TestUser_ApplyLoginAndNameTogether(t *testing.T) {
	u := User{Login: "neo", Name: "neo"}

	u.Apply(UserPatch{Login: ptr("trinity"), Name: ptr("Trinity")})

	assert.Equal(t, "trinity", u.Login)
	assert.Equal(t, "Trinity", u.Name)
}

func TestUser_ApplyLeavesOmittedFields(t *testing.T) {
	birthday := ptr(date(1990, time.March, 11))
	u := User{Email: "a@b", Login: "neo", Name: "Neo", Birthday: birthday}

	u.Apply(UserPatch{Email: ptr("c@d")})

	assert.Equal(t, User{Email: "c@d", Login: "neo", Name: "Neo", Birthday: birthday}, u)
}

func TestFilm_Apply(t *testing.T) {
	f := Film{ID: 1, Name: "old", Description: "desc", Duration: 90}

	f.Apply(FilmPatch{Name: ptr("new"), Duration: ptr(100)})

	assert.Equal(t, Film{ID: 1, Name: "new", Description: "desc", Duration: 100}, f)
}

func TestIDSet(t *testing.T) {
	s := NewIDSet(3, 1)
	s.Add(2)
	s.Add(2)

	assert.Equal(t, []int64{1, 2, 3}, s.Sorted())

	clone := s.Clone()
	clone.Remove(1)
	assert.True(t, s.Has(1))
	assert.False(t, clone.Has(1))

	assert.Equal(t, []int64{2, 3}, s.Intersect(NewIDSet(2, 3, 4)).Sorted())
	assert.Empty(t, s.Intersect(nil))
}
