package position

import "testing"

func TestNewSquareFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		notation string
		want     Square
		wantErr  bool
	}{
		{notation: "a1", want: A1},
		{notation: "h1", want: H1},
		{notation: "a8", want: A8},
		{notation: "h8", want: H8},
		{notation: "e4", want: E4},
		{notation: "d5", want: D5},
		{notation: "", wantErr: true},
		{notation: "e", wantErr: true},
		{notation: "e44", wantErr: true},
		{notation: "i4", wantErr: true},
		{notation: "a9", wantErr: true},
		{notation: "4e", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.notation, func(t *testing.T) {
			t.Parallel()
			got, err := NewSquareFromNotation(tt.notation)
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got != tt.want {
				t.Errorf("unexpected square: got=%d want=%d", got, tt.want)
			}
			if gotNotation := got.Notation(); gotNotation != tt.notation {
				t.Errorf("unexpected notation: got=%s want=%s", gotNotation, tt.notation)
			}
		})
	}
}

func TestSquareComponents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		square     Square
		file, rank Square
	}{
		{square: A1, file: FileA, rank: Rank1},
		{square: H1, file: FileH, rank: Rank1},
		{square: E4, file: FileE, rank: Rank4},
		{square: C7, file: FileC, rank: Rank7},
		{square: H8, file: FileH, rank: Rank8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.square.Notation(), func(t *testing.T) {
			t.Parallel()
			if got := tt.square.File(); got != tt.file {
				t.Errorf("unexpected file: got=%d want=%d", got, tt.file)
			}
			if got := tt.square.Rank(); got != tt.rank {
				t.Errorf("unexpected rank: got=%d want=%d", got, tt.rank)
			}
		})
	}
}

func TestSquareStep(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		from   Square
		offset Square
		want   Square
	}{
		{name: "north", from: E4, offset: 8, want: E5},
		{name: "south edge", from: E1, offset: -8, want: NoSquare},
		{name: "east wrap", from: H4, offset: 1, want: NoSquare},
		{name: "west wrap", from: A4, offset: -1, want: NoSquare},
		{name: "knight jump", from: B1, offset: 17, want: C3},
		{name: "knight wrap", from: G1, offset: 10, want: NoSquare},
		{name: "diagonal", from: D4, offset: 9, want: E5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.from.Step(tt.offset); got != tt.want {
				t.Errorf("unexpected square: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestSquareDistance(t *testing.T) {
	t.Parallel()
	if got := A1.FileDistance(H8); got != 7 {
		t.Errorf("unexpected file distance: got=%d want=7", got)
	}
	if got := H8.FileDistance(A1); got != 7 {
		t.Errorf("unexpected file distance: got=%d want=7", got)
	}
	if got := E2.RankDistance(E4); got != 2 {
		t.Errorf("unexpected rank distance: got=%d want=2", got)
	}
	if got := E4.RankDistance(E2); got != 2 {
		t.Errorf("unexpected rank distance: got=%d want=2", got)
	}
}
