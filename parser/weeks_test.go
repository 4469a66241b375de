package parser

import "testing"

func TestBuildVariantsNoSplit(t *testing.T) {
	variants := buildVariants("Математика", "Іванов", "101")
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	v := variants[0]
	if v.subject != "Математика" || v.teacher != "Іванов" || v.classroom != "101" || v.weekNumber != 0 {
		t.Errorf("unexpected variant: %+v", v)
	}
}

func TestBuildVariantsSlashPair(t *testing.T) {
	variants := buildVariants("Математика / Фізика", "Іванов / Петров", "101 / 202")
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}

	first, second := variants[0], variants[1]
	if first.weekNumber != 1 || second.weekNumber != 2 {
		t.Errorf("week numbers: %d, %d", first.weekNumber, second.weekNumber)
	}
	if first.subject != "Математика" || first.teacher != "Іванов" || first.classroom != "101" {
		t.Errorf("first half: %+v", first)
	}
	if second.subject != "Фізика" || second.teacher != "Петров" || second.classroom != "202" {
		t.Errorf("second half: %+v", second)
	}
}

func TestBuildVariantsPartialSplit(t *testing.T) {
	// розділився лише предмет: викладач і аудиторія дублюються
	variants := buildVariants("Математика / Фізика", "Іванов", "101")
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	for _, v := range variants {
		if v.teacher != "Іванов" || v.classroom != "101" {
			t.Errorf("unsplit fields must be duplicated: %+v", v)
		}
	}
}

func TestBuildVariantsExplicitMarkers(t *testing.T) {
	variants := buildVariants("1 тиждень Математика / 2 тиждень Фізика", "Іванов", "101")
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if variants[0].subject != "Математика" {
		t.Errorf("first subject = %q, markers must be stripped", variants[0].subject)
	}
	if variants[1].subject != "Фізика" {
		t.Errorf("second subject = %q, markers must be stripped", variants[1].subject)
	}
}

func TestBuildVariantsEmptyHalf(t *testing.T) {
	variants := buildVariants("Математика / -", "Іванов / -", "101 / -")
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	if variants[0].weekNumber != 1 {
		t.Errorf("weekNumber = %d, want 1", variants[0].weekNumber)
	}
}

func TestBuildVariantsBothHalvesEmpty(t *testing.T) {
	variants := buildVariants("-/-", "-", "")
	if len(variants) != 0 {
		t.Fatalf("expected no variants, got %d: %+v", len(variants), variants)
	}
}

func TestBuildVariantsPlaceholders(t *testing.T) {
	// половинка без предмета, але з викладачем — не порожня
	variants := buildVariants("/ Фізика", "Іванов / Петров", "")
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if variants[0].subject != unknownSubject {
		t.Errorf("blank subject half: got %q, want placeholder", variants[0].subject)
	}
	if variants[0].classroom != "-" {
		t.Errorf("blank classroom: got %q, want \"-\"", variants[0].classroom)
	}
}

func TestBuildVariantsInlineMarker(t *testing.T) {
	variants := buildVariants("Математика (2 тиждень)", "Іванов", "101")
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	if variants[0].weekNumber != 2 {
		t.Errorf("weekNumber = %d, want 2", variants[0].weekNumber)
	}
	if variants[0].subject != "Математика" {
		t.Errorf("subject = %q, marker must be stripped", variants[0].subject)
	}
}
