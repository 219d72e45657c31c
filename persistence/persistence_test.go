package persistence

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

type memoryItems struct {
	items   map[string][]byte
	saveErr error
	loadErr error
}

func newMemoryItems() *memoryItems {
	return &memoryItems{items: make(map[string][]byte)}
}

func (m *memoryItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryItems) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestLoadDataMissingItemIsEmptyList(t *testing.T) {
	store := NewStore(newMemoryItems())

	data, err := store.LoadData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.SavedTasks) != 0 {
		t.Fatalf("expected no tasks, got %v", data.SavedTasks)
	}
}

func TestSaveFuncPersistsCurrentTasks(t *testing.T) {
	items := newMemoryItems()
	store := NewStore(items)
	data := &Data{}
	save := store.SaveFunc(data)

	data.SavedTasks = append(data.SavedTasks, "Buy seeds", "Fix fence")
	if err := save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := store.LoadData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(loaded.SavedTasks, []string{"Buy seeds", "Fix fence"}) {
		t.Fatalf("unexpected tasks %v", loaded.SavedTasks)
	}
}

func TestSaveDataWrapsBackendError(t *testing.T) {
	items := newMemoryItems()
	items.saveErr = errors.New("read-only")
	store := NewStore(items)

	err := store.SaveData(&Data{SavedTasks: []string{"A"}})
	if !errors.Is(err, items.saveErr) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestLoadDataRejectsCorruptJSON(t *testing.T) {
	items := newMemoryItems()
	items.items[tasksItem] = []byte("{not json")

	if _, err := NewStore(items).LoadData(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadSettingsWritesDefaultsOnFirstRun(t *testing.T) {
	items := newMemoryItems()
	store := NewStore(items)

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}

	raw, ok := items.items[settingsItem]
	if !ok {
		t.Fatal("expected defaults written back")
	}
	var written Settings
	if err := json.Unmarshal(raw, &written); err != nil {
		t.Fatalf("written settings not JSON: %v", err)
	}
	if written.OpenListKey != "F2" {
		t.Fatalf("expected F2 written, got %q", written.OpenListKey)
	}
}

func TestLoadSettingsKeepsSavedValues(t *testing.T) {
	items := newMemoryItems()
	items.items[settingsItem] = []byte(`{"useLargerFont":true,"openListKey":"T"}`)

	settings, err := NewStore(items).LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Settings{UseLargerFont: true, OpenListKey: "T"}
	if settings != want {
		t.Fatalf("expected %+v, got %+v", want, settings)
	}
}

func TestLoadSettingsFillsBlankKey(t *testing.T) {
	items := newMemoryItems()
	items.items[settingsItem] = []byte(`{"useLargerFont":true}`)

	settings, err := NewStore(items).LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.OpenListKey != "F2" || !settings.UseLargerFont {
		t.Fatalf("unexpected settings %+v", settings)
	}
}

func TestLoadSettingsBackendErrorReturnsDefaults(t *testing.T) {
	items := newMemoryItems()
	items.loadErr = errors.New("permission denied")

	settings, err := NewStore(items).LoadSettings()
	if !errors.Is(err, items.loadErr) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults alongside error, got %+v", settings)
	}
}

func TestMemoryItemsRoundTripsThroughStore(t *testing.T) {
	store := NewStore(NewMemoryItems())

	if err := store.SaveData(&Data{SavedTasks: []string{"Water crops"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := store.LoadData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(loaded.SavedTasks, []string{"Water crops"}) {
		t.Fatalf("unexpected tasks %v", loaded.SavedTasks)
	}
}
