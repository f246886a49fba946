package lexicon

// defaultTerms is the natural-imagery vocabulary in its curated order.
// Some weather terms are listed under both 天文 and 气候; New keeps the
// first occurrence only.
var defaultTerms = []string{
	// 天文
	"日", "月", "星", "辰", "北极星", "启明", "北斗", "星宿",
	"云", "霞", "虹", "霓", "风", "霜", "露", "雾", "霾",
	"穹", "霄汉", "天河", "太虚", "清辉", "星汉", "银汉", "银河",

	// 地理
	"山", "川", "峰", "岭", "江", "河", "湖", "海", "溪", "潭", "泉", "瀑布",
	"原野", "沙", "漠", "荒丘", "岛", "屿", "洞", "穴", "岩", "水",

	// 动物
	"鸟", "鹰", "鹤", "雁", "雀", "燕", "鹊", "鸦", "鹭", "鸠", "黄鹂", "子规", "鸥", "凤", "凰", "精卫",
	"虎", "豹", "狼", "熊", "鹿", "马", "牛", "羊", "犬", "狐", "猿", "兔", "麒麟", "貔貅",
	"鱼", "龙", "蛟", "鼋", "鼍", "蚌", "鳖", "虾", "蟹", "鲲", "鹏",
	"蝉", "螽斯", "蟋蟀", "蝴", "蝶", "蜂", "萤", "蜘蛛", "蜻蜓", "蚕",

	// 植物
	"松", "柏", "槐", "柳", "竹", "梧", "桐", "桑", "桃", "李", "梅", "枫", "桂", "楠", "银杏",
	"兰", "菊", "荷", "芍药", "牡丹", "芙蓉", "棠", "杜鹃", "芦苇", "蒲", "萱", "苹", "蓼", "萍", "苔", "菌", "灵芝",
	"稻", "麦", "黍", "稷", "菽", "麻", "瓜", "瓠", "藤", "蔓", "葛",

	// 气候
	"风", "雨", "雪", "霜", "露", "雾", "霾", "雷", "虹", "霓", "雹", "冰",
}

var defaultTaxonomy = []MainCategory{
	{Name: "天文", Subcategories: []Subcategory{
		{Name: "日月星辰", Terms: []string{"日", "月", "星", "辰", "北极星", "启明", "北斗", "星宿"}},
		{Name: "天气现象", Terms: []string{"云", "霞", "虹", "霓", "风", "霜", "露", "雾", "霾"}},
		{Name: "宇宙元素", Terms: []string{"穹", "霄汉", "天河", "太虚", "清辉", "星汉", "银汉", "银河"}},
	}},
	{Name: "地理", Subcategories: []Subcategory{
		{Name: "自然地貌", Terms: []string{"山", "川", "峰", "岭", "江", "河", "湖", "海", "溪", "潭", "泉", "瀑布", "原野", "沙", "漠", "荒丘", "岛", "屿", "洞", "穴", "岩", "水"}},
	}},
	{Name: "动物", Subcategories: []Subcategory{
		{Name: "飞禽", Terms: []string{"鸟", "鹰", "鹤", "雁", "雀", "燕", "鹊", "鸦", "鹭", "鸠", "黄鹂", "子规", "鸥", "凤", "凰", "精卫"}},
		{Name: "走兽", Terms: []string{"虎", "豹", "狼", "熊", "鹿", "马", "牛", "羊", "犬", "狐", "猿", "兔", "麒麟", "貔貅"}},
		{Name: "水族", Terms: []string{"鱼", "龙", "蛟", "鼋", "鼍", "蚌", "鳖", "虾", "蟹", "鲲", "鹏"}},
		{Name: "昆虫", Terms: []string{"蝉", "螽斯", "蟋蟀", "蝴", "蝶", "蜂", "萤", "蜘蛛", "蜻蜓", "蚕"}},
	}},
	{Name: "植物", Subcategories: []Subcategory{
		{Name: "树木", Terms: []string{"松", "柏", "槐", "柳", "竹", "梧", "桐", "桑", "桃", "李", "梅", "枫", "桂", "楠", "银杏"}},
		{Name: "花草", Terms: []string{"兰", "菊", "荷", "芍药", "牡丹", "芙蓉", "棠", "杜鹃", "芦苇", "蒲", "萱", "苹", "蓼", "萍", "苔", "菌", "灵芝"}},
		{Name: "农作物", Terms: []string{"稻", "麦", "黍", "稷", "菽", "麻", "瓜", "瓠", "藤", "蔓", "葛"}},
	}},
	{Name: "气候", Subcategories: []Subcategory{
		{Name: "气象变化", Terms: []string{"风", "雨", "雪", "霜", "露", "雾", "霾", "雷", "虹", "霓", "雹", "冰"}},
	}},
}

// defaultCommonWords are the characters that count as meaningful partners
// in per-poem word relationships (verbs, emotions, colours, directions,
// seasons, objects).
var defaultCommonWords = []string{
	"落", "飘", "流", "思", "望", "愿", "斜", "凋", "吹", "垂", "逝", "枯", "残", "碎", "坠", "摇", "散", "拂", "凝", "卷", "舞", "浮", "沉", "涌", "曳", "映", "绽", "栖", "鸣", "隐", "泛", "敛", "旱", "离", "归", "叹", "奚", "惜", "别", "醉", "戏", "啼", "飞", "征", "莫", "难", "兴", "啸", "危", "乱",
	"爱", "恨", "怨", "愁", "喜", "怕", "惧", "苦", "怒", "慕", "痴", "憾", "怜", "妒", "怅", "惶", "怯", "哀", "惑", "倦", "羡", "愧", "嗔", "念", "忧", "寂", "恼", "惘", "泪", "凄", "凉", "骄", "娇", "俏", "孤", "病", "坏", "悠", "闲", "害",
	"生", "死", "昔", "往", "独",
	"霁", "晦", "灼", "烁", "黯", "皎", "朦", "湮", "溯", "升", "徙", "寒", "空", "清", "深", "浅", "香", "幽",
	"潜", "唳", "啭", "喑", "萎", "蔓", "明", "翩", "蛰",
	"酒", "茶", "曲", "舟", "诗", "书", "仙", "玉", "剑", "刀", "钟", "盔", "甲", "笛", "萧", "笙", "镜",
	"壑", "涧", "汀", "渚", "岫", "峦", "驿", "隘", "津", "陌", "墟", "砌", "槛", "扉", "村", "郭",
	"红", "黄", "绿", "橙", "青", "蓝", "紫", "白", "素", "黑", "苍", "斑", "皑", "绛", "翠", "皴", "皤", "黧", "缁", "茜", "玄", "灰",
	"东", "西", "南", "北", "中", "春", "夏", "秋", "冬", "大", "小", "薄", "厚", "高", "低",
}
