// ABOUTME: Hand-authored Korean vocabulary with 8-dimension semantic base vectors.
// ABOUTME: Words are grouped into ranked clusters; order within a cluster is significant.
package vectors

// Cluster names a semantic group of vocabulary words.
type Cluster string

const (
	ClusterFruits    Cluster = "fruits"
	ClusterAnimals   Cluster = "animals"
	ClusterBuildings Cluster = "buildings"
	ClusterEmotions  Cluster = "emotions"
	ClusterColors    Cluster = "colors"
	ClusterObjects   Cluster = "objects"
	ClusterFood      Cluster = "food"
	ClusterPeople    Cluster = "people"
	ClusterWeather   Cluster = "weather"
)

// Clusters lists every cluster in declaration order.
var Clusters = []Cluster{
	ClusterFruits,
	ClusterAnimals,
	ClusterBuildings,
	ClusterEmotions,
	ClusterColors,
	ClusterObjects,
	ClusterFood,
	ClusterPeople,
	ClusterWeather,
}

// BaseVector holds the hand-assigned cluster weights of a word.
type BaseVector [BaseDimension]float64

// Entry is a single literal vocabulary word.
type Entry struct {
	Word    string
	Cluster Cluster
	Base    BaseVector
}

// vocabulary is ordered by cluster, then by hand-assigned rank.
var vocabulary = []Entry{
	// 과일
	{"사과", ClusterFruits, BaseVector{1.0, 0.8, 0, 0, 0, 0, 0, 0}},
	{"바나나", ClusterFruits, BaseVector{0.9, 0.9, 0, 0, 0, 0, 0, 0}},
	{"딸기", ClusterFruits, BaseVector{0.8, 0.8, 0, 0, 0, 0, 0, 0}},
	{"포도", ClusterFruits, BaseVector{0.7, 0.7, 0, 0, 0, 0, 0, 0}},
	{"복숭아", ClusterFruits, BaseVector{0.6, 0.9, 0, 0, 0, 0, 0, 0}},
	{"수박", ClusterFruits, BaseVector{0.5, 0.6, 0, 0, 0, 0, 0, 0}},
	{"메론", ClusterFruits, BaseVector{0.4, 0.7, 0, 0, 0, 0, 0, 0}},
	{"키위", ClusterFruits, BaseVector{0.3, 0.5, 0, 0, 0, 0, 0, 0}},

	// 동물
	{"고양이", ClusterAnimals, BaseVector{0, 0, 1.0, 0.8, 0, 0, 0, 0}},
	{"강아지", ClusterAnimals, BaseVector{0, 0, 0.9, 0.9, 0, 0, 0, 0}},
	{"토끼", ClusterAnimals, BaseVector{0, 0, 0.8, 0.7, 0, 0, 0, 0}},
	{"곰", ClusterAnimals, BaseVector{0, 0, 0.7, 0.6, 0, 0, 0, 0}},
	{"사자", ClusterAnimals, BaseVector{0, 0, 0.6, 0.5, 0, 0, 0, 0}},
	{"호랑이", ClusterAnimals, BaseVector{0, 0, 0.5, 0.4, 0, 0, 0, 0}},
	{"코끼리", ClusterAnimals, BaseVector{0, 0, 0.4, 0.3, 0, 0, 0, 0}},
	{"기린", ClusterAnimals, BaseVector{0, 0, 0.3, 0.2, 0, 0, 0, 0}},

	// 건물
	{"학교", ClusterBuildings, BaseVector{0, 0, 0, 0, 1.0, 0.8, 0, 0}},
	{"집", ClusterBuildings, BaseVector{0, 0, 0, 0, 0.9, 0.9, 0, 0}},
	{"회사", ClusterBuildings, BaseVector{0, 0, 0, 0, 0.8, 0.7, 0, 0}},
	{"병원", ClusterBuildings, BaseVector{0, 0, 0, 0, 0.7, 0.6, 0, 0}},
	{"공원", ClusterBuildings, BaseVector{0, 0, 0, 0, 0.6, 0.5, 0, 0}},
	{"도서관", ClusterBuildings, BaseVector{0, 0, 0, 0, 0.5, 0.4, 0, 0}},
	{"카페", ClusterBuildings, BaseVector{0, 0, 0, 0, 0.4, 0.3, 0, 0}},
	{"식당", ClusterBuildings, BaseVector{0, 0, 0, 0, 0.3, 0.2, 0, 0}},

	// 감정
	{"사랑", ClusterEmotions, BaseVector{0, 0, 0, 0, 0, 0, 1.0, 0.9}},
	{"행복", ClusterEmotions, BaseVector{0, 0, 0, 0, 0, 0, 0.9, 1.0}},
	{"기쁨", ClusterEmotions, BaseVector{0, 0, 0, 0, 0, 0, 0.8, 0.8}},
	{"슬픔", ClusterEmotions, BaseVector{0, 0, 0, 0, 0, 0, 0.2, 0.1}},
	{"화남", ClusterEmotions, BaseVector{0, 0, 0, 0, 0, 0, 0.1, 0}},
	{"두려움", ClusterEmotions, BaseVector{0, 0, 0, 0, 0, 0, 0, 0.1}},
	{"평화", ClusterEmotions, BaseVector{0, 0, 0, 0, 0, 0, 0.7, 0.8}},

	// 색깔: no cluster weights, noise only
	{"빨간색", ClusterColors, BaseVector{}},
	{"파란색", ClusterColors, BaseVector{}},
	{"노란색", ClusterColors, BaseVector{}},
	{"초록색", ClusterColors, BaseVector{}},
	{"검은색", ClusterColors, BaseVector{}},
	{"흰색", ClusterColors, BaseVector{}},

	// 일반 사물
	{"컴퓨터", ClusterObjects, BaseVector{0.1, 0, 0, 0, 0.2, 0.1, 0, 0}},
	{"핸드폰", ClusterObjects, BaseVector{0, 0.1, 0, 0, 0.1, 0.2, 0, 0}},
	{"책", ClusterObjects, BaseVector{0, 0, 0.1, 0, 0.3, 0.4, 0, 0}},
	{"연필", ClusterObjects, BaseVector{0, 0, 0, 0.1, 0.2, 0.3, 0, 0}},
	{"가방", ClusterObjects, BaseVector{0, 0, 0, 0, 0.1, 0.2, 0, 0}},
	{"신발", ClusterObjects, BaseVector{0, 0, 0, 0, 0, 0.1, 0, 0}},
	{"옷", ClusterObjects, BaseVector{0, 0, 0, 0, 0, 0, 0.1, 0}},
	{"모자", ClusterObjects, BaseVector{0, 0, 0, 0, 0, 0, 0, 0.1}},

	// 음식과 음료
	{"음식", ClusterFood, BaseVector{0.5, 0.4, 0, 0, 0, 0, 0, 0}},
	{"물", ClusterFood, BaseVector{}},
	{"우유", ClusterFood, BaseVector{0.3, 0.2, 0, 0, 0, 0, 0, 0}},
	{"커피", ClusterFood, BaseVector{0.1, 0, 0, 0, 0.2, 0.3, 0, 0}},
	{"차", ClusterFood, BaseVector{0, 0.1, 0, 0, 0.1, 0.2, 0, 0}},
	{"주스", ClusterFood, BaseVector{0.4, 0.5, 0, 0, 0, 0, 0, 0}},
	{"빵", ClusterFood, BaseVector{0.2, 0.1, 0, 0, 0, 0, 0, 0}},
	{"밥", ClusterFood, BaseVector{0.1, 0, 0, 0, 0.1, 0, 0, 0}},

	// 가족과 사람
	{"친구", ClusterPeople, BaseVector{0, 0, 0, 0, 0, 0, 0.6, 0.7}},
	{"가족", ClusterPeople, BaseVector{0, 0, 0, 0, 0, 0, 0.8, 0.9}},
	{"부모", ClusterPeople, BaseVector{0, 0, 0, 0, 0, 0, 0.7, 0.8}},
	{"형제", ClusterPeople, BaseVector{0, 0, 0, 0, 0, 0, 0.5, 0.6}},
	{"자매", ClusterPeople, BaseVector{0, 0, 0, 0, 0, 0, 0.4, 0.5}},
	{"선생님", ClusterPeople, BaseVector{0, 0, 0, 0, 0.5, 0.6, 0.3, 0.4}},
	{"학생", ClusterPeople, BaseVector{0, 0, 0, 0, 0.7, 0.8, 0.2, 0.3}},
	{"의사", ClusterPeople, BaseVector{0, 0, 0, 0, 0.3, 0.4, 0, 0}},

	// 날씨와 계절: noise only
	{"봄", ClusterWeather, BaseVector{}},
	{"여름", ClusterWeather, BaseVector{}},
	{"가을", ClusterWeather, BaseVector{}},
	{"겨울", ClusterWeather, BaseVector{}},
	{"비", ClusterWeather, BaseVector{}},
	{"눈", ClusterWeather, BaseVector{}},
	{"바람", ClusterWeather, BaseVector{}},
	{"구름", ClusterWeather, BaseVector{}},
}

// Vocabulary returns a copy of the literal vocabulary in ranked order.
func Vocabulary() []Entry {
	out := make([]Entry, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// VocabularySize is the number of literal vocabulary entries.
func VocabularySize() int {
	return len(vocabulary)
}

// ClusterWords returns the words of a cluster in ranked order.
func ClusterWords(c Cluster) []string {
	var words []string
	for _, e := range vocabulary {
		if e.Cluster == c {
			words = append(words, e.Word)
		}
	}
	return words
}
