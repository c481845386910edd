package config

// defaultAllowedDomains lists Korean financial/economic outlets; general
// and entertainment press is excluded at the source.
func defaultAllowedDomains() []string {
	return []string{
		"mk.co.kr",        // 매일경제
		"heraldcorp.com",  // 헤럴드경제
		"herald.co.kr",    // 헤럴드경제 (구도메인)
		"fnnews.com",      // 파이낸셜뉴스
		"mt.co.kr",        // 머니투데이
		"moneytoday.co.kr", // 머니투데이 (구도메인)
		"bizwatch.co.kr",  // 비즈워치
		"asiae.co.kr",     // 아시아경제
		"edaily.co.kr",    // 이데일리
		"biz.chosun.com",  // 조선비즈
		"hankyung.com",    // 한국경제
		"joseilbo.com",    // 조세일보
		"sedaily.com",     // 서울경제
	}
}

// defaultExcludeKeywords carries entertainment/celebrity vocabulary.
// Two hits reject a candidate; one hit needs finance evidence to pass.
func defaultExcludeKeywords() []string {
	return []string{
		"드라마", "배우", "아이돌", "예능", "콘서트",
		"팬미팅", "연예", "가수", "앨범", "데뷔",
		"컴백", "출연", "시사회", "개봉", "화보",
		"열애", "결혼식", "뮤직비디오", "팬덤", "소속사",
	}
}

// defaultFinanceKeywords carries market vocabulary used as rescue
// evidence when a single exclude keyword matches.
func defaultFinanceKeywords() []string {
	return []string{
		"주가", "주식", "증시", "실적", "매출",
		"영업이익", "투자", "시총", "시가총액", "나스닥",
		"상장", "공모", "배당", "환율", "금리",
		"목표주가", "인수", "합병", "수주", "공시",
	}
}

// defaultTickers is the NASDAQ-100 ticker → Korean search query table.
func defaultTickers() []TickerConfig {
	return []TickerConfig{
		// Semiconductor
		{Symbol: "NVDA", Query: "엔비디아"},
		{Symbol: "AVGO", Query: "브로드컴"},
		{Symbol: "ASML", Query: "ASML"},
		{Symbol: "AMD", Query: "AMD"},
		{Symbol: "QCOM", Query: "퀄컴"},
		{Symbol: "TXN", Query: "텍사스인스트루먼트"},
		{Symbol: "ARM", Query: "ARM 반도체"},
		{Symbol: "AMAT", Query: "어플라이드머티리얼즈"},
		{Symbol: "INTC", Query: "인텔 반도체"},
		{Symbol: "ADI", Query: "아날로그디바이시스"},
		{Symbol: "MU", Query: "마이크론"},
		{Symbol: "LRCX", Query: "램리서치"},
		{Symbol: "KLAC", Query: "KLA"},
		{Symbol: "MRVL", Query: "마벨테크놀로지"},
		{Symbol: "NXPI", Query: "NXP반도체"},
		{Symbol: "MCHP", Query: "마이크로칩"},
		{Symbol: "MPWR", Query: "모놀리식파워"},
		{Symbol: "STX", Query: "시게이트"},
		{Symbol: "WDC", Query: "웨스턴디지털"},
		// Software & Cloud
		{Symbol: "MSFT", Query: "마이크로소프트"},
		{Symbol: "CSCO", Query: "시스코"},
		{Symbol: "PLTR", Query: "팔란티어"},
		{Symbol: "CDNS", Query: "케이던스"},
		{Symbol: "SNPS", Query: "시놉시스"},
		{Symbol: "ADBE", Query: "어도비"},
		{Symbol: "INTU", Query: "인튜이트"},
		{Symbol: "ADP", Query: "ADP"},
		{Symbol: "WDAY", Query: "워크데이"},
		{Symbol: "DDOG", Query: "데이터독"},
		{Symbol: "VRSK", Query: "버리스크"},
		{Symbol: "CTSH", Query: "코그니전트"},
		{Symbol: "CSGP", Query: "코스타그룹"},
		{Symbol: "PAYX", Query: "페이첵스"},
		{Symbol: "MSTR", Query: "마이크로스트래티지"},
		{Symbol: "PANW", Query: "팔로알토네트웍스"},
		{Symbol: "CRWD", Query: "크라우드스트라이크"},
		{Symbol: "FTNT", Query: "포티넷"},
		{Symbol: "ZS", Query: "지스케일러"},
		{Symbol: "TEAM", Query: "아틀라시안"},
		{Symbol: "ADSK", Query: "오토데스크"},
		{Symbol: "SHOP", Query: "쇼피파이"},
		{Symbol: "ROP", Query: "로퍼테크놀로지스"},
		{Symbol: "TRI", Query: "톰슨로이터"},
		// Internet & Info
		{Symbol: "GOOGL", Query: "구글 알파벳"},
		{Symbol: "META", Query: "메타 페이스북"},
		{Symbol: "NFLX", Query: "넷플릭스"},
		{Symbol: "APP", Query: "앱러빈"},
		{Symbol: "DASH", Query: "도어대시"},
		{Symbol: "EA", Query: "일렉트로닉아츠"},
		{Symbol: "TTWO", Query: "테이크투"},
		{Symbol: "PDD", Query: "핀둬둬 테무"},
		{Symbol: "WBD", Query: "워너브라더스"},
		{Symbol: "CHTR", Query: "차터커뮤니케이션"},
		{Symbol: "CMCSA", Query: "컴캐스트"},
		// Internet Retail
		{Symbol: "AMZN", Query: "아마존"},
		{Symbol: "BKNG", Query: "부킹홀딩스"},
		{Symbol: "MELI", Query: "메르카도리브레"},
		{Symbol: "ABNB", Query: "에어비앤비"},
		{Symbol: "PYPL", Query: "페이팔"},
		{Symbol: "MAR", Query: "메리어트"},
		{Symbol: "ROST", Query: "로스스토어스"},
		{Symbol: "WMT", Query: "월마트"},
		// Consumer Lifestyle
		{Symbol: "AAPL", Query: "애플"},
		{Symbol: "COST", Query: "코스트코"},
		{Symbol: "PEP", Query: "펩시코"},
		{Symbol: "TMUS", Query: "T모바일"},
		{Symbol: "SBUX", Query: "스타벅스"},
		{Symbol: "MDLZ", Query: "몬델리즈"},
		{Symbol: "MNST", Query: "몬스터비버리지"},
		{Symbol: "KHC", Query: "크래프트하인즈"},
		{Symbol: "KDP", Query: "큐리그닥터페퍼"},
		{Symbol: "CCEP", Query: "코카콜라유로패시픽"},
		{Symbol: "CEG", Query: "컨스텔레이션에너지"},
		{Symbol: "XEL", Query: "엑셀에너지"},
		{Symbol: "AEP", Query: "아메리칸일렉트릭파워"},
		{Symbol: "EXC", Query: "엑셀론"},
		// Healthcare
		{Symbol: "ISRG", Query: "인튜이티브서지컬"},
		{Symbol: "AMGN", Query: "암젠"},
		{Symbol: "VRTX", Query: "버텍스제약"},
		{Symbol: "GILD", Query: "길리어드"},
		{Symbol: "REGN", Query: "리제네론"},
		{Symbol: "GEHC", Query: "GE헬스케어"},
		{Symbol: "DXCM", Query: "덱스콤"},
		{Symbol: "IDXX", Query: "아이덱스"},
		{Symbol: "ALNY", Query: "알나일람"},
		{Symbol: "INSM", Query: "인스메드"},
		{Symbol: "LIN", Query: "린데"},
		// Mobility & Industrial
		{Symbol: "TSLA", Query: "테슬라"},
		{Symbol: "HON", Query: "하니웰"},
		{Symbol: "AXON", Query: "액슨엔터프라이즈"},
		{Symbol: "CSX", Query: "CSX"},
		{Symbol: "CPRT", Query: "코파트"},
		{Symbol: "ODFL", Query: "올드도미니언"},
		{Symbol: "FAST", Query: "파스널"},
		{Symbol: "FANG", Query: "다이아몬드백에너지"},
		{Symbol: "BKR", Query: "베이커휴즈"},
		{Symbol: "FER", Query: "페로비알"},
		{Symbol: "PCAR", Query: "팩카"},
		{Symbol: "ORLY", Query: "오라일리오토"},
		{Symbol: "CTAS", Query: "신타스"},
	}
}
