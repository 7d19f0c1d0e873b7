package dictionary

type Map[K comparable, V any] interface {
	Insert(key K, value V) (V, bool)
	Get(key K) (V, bool)
	Remove(key K) (V, bool)
	ContainsKey(key K) bool
	Keys() []K
	Values() []V
	Len() int
}

var (
	_ Map[string, int] = (*Dictionary[string, int])(nil)
	_ Map[string, int] = (*SyncDictionary[string, int])(nil)
)
