package league

// nflTeams is the static season roster. Team ids match the upstream provider's
// team ids so possession lookups resolve without a mapping table. Ids 0, 98
// and 99 are the pseudo-team entries used by pick records.
var nflTeams = []Team{
	{ID: 0, City: "PUSH", Name: "PUSH", Abbr: "PSH", IconURL: "https://api.iconify.design/mdi/equal.svg", Active: false},
	{ID: 22, City: "ARIZONA", Name: "CARDINALS", Abbr: "ARI", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/5Mh3xcc8uAsxAi3WZvfEyQ_48x48.png", Active: true},
	{ID: 1, City: "ATLANTA", Name: "FALCONS", Abbr: "ATL", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/QNdwQPxtIRYUhnMBYq-bSA_48x48.png", Active: true},
	{ID: 33, City: "BALTIMORE", Name: "RAVENS", Abbr: "BAL", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/1vlEqqoyb9uTqBYiBeNH-w_48x48.png", Active: true},
	{ID: 2, City: "BUFFALO", Name: "BILLS", Abbr: "BUF", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/_RMCkIDTISqCPcSoEvRDhg_48x48.png", Active: true},
	{ID: 29, City: "CAROLINA", Name: "PANTHERS", Abbr: "CAR", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/HsLg5tW_S7566EbsMPlcVQ_48x48.png", Active: true},
	{ID: 3, City: "CHICAGO", Name: "BEARS", Abbr: "CHI", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/7uaGv3B13mXyBhHcTysHcA_48x48.png", Active: true},
	{ID: 4, City: "CINCINNATI", Name: "BENGALS", Abbr: "CIN", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/wDDRqMa40nidAOA5883Vmw_48x48.png", Active: true},
	{ID: 5, City: "CLEVELAND", Name: "BROWNS", Abbr: "CLE", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/bTzlW33n9s53DxRzmlZXyg_48x48.png", Active: true},
	{ID: 6, City: "DALLAS", Name: "COWBOYS", Abbr: "DAL", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/-zeHm0cuBjZXc2HRxRAI0g_48x48.png", Active: true},
	{ID: 7, City: "DENVER", Name: "BRONCOS", Abbr: "DEN", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/ZktET_o_WU6Mm1sJzJLZhQ_48x48.png", Active: true},
	{ID: 8, City: "DETROIT", Name: "LIONS", Abbr: "DET", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/WE1l856fyyHh6eAbbb8hQQ_48x48.png", Active: true},
	{ID: 9, City: "GREEN BAY", Name: "PACKERS", Abbr: "GB", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/IlA4VGrUHzSVLCOcHsRKgg_48x48.png", Active: true},
	{ID: 34, City: "HOUSTON", Name: "TEXANS", Abbr: "HOU", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/sSUn9HRpYLQtEFF2aG9T8Q_48x48.png", Active: true},
	{ID: 11, City: "INDIANAPOLIS", Name: "COLTS", Abbr: "IND", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/zOE7BhKadEjaSrrFjcnR4w_48x48.png", Active: true},
	{ID: 30, City: "JACKSONVILLE", Name: "JAGUARS", Abbr: "JAX", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/HLfqVCxzVx5CUDQ07GLeWg_48x48.png", Active: true},
	{ID: 12, City: "KANSAS CITY", Name: "CHIEFS", Abbr: "KC", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/5N0l1KbG1BHPyP8_S7SOXg_48x48.png", Active: true},
	{ID: 13, City: "LAS VEGAS", Name: "RAIDERS", Abbr: "LV", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/EAQRZu91bwn1l8brW9HWBQ_48x48.png", Active: true},
	{ID: 14, City: "LOS ANGELES", Name: "RAMS", Abbr: "LAR", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/CXW68CjwPIaUurbvSUSyJw_48x48.png", Active: true},
	{ID: 24, City: "LOS ANGELES", Name: "CHARGERS", Abbr: "LAC", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/1ysKnl7VwOQO8g94gbjKdQ_48x48.png", Active: true},
	{ID: 15, City: "MIAMI", Name: "DOLPHINS", Abbr: "MIA", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/Vmg4u0BSYZ-1Mc-5uyvxHg_48x48.png", Active: true},
	{ID: 16, City: "MINNESOTA", Name: "VIKINGS", Abbr: "MIN", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/z89hPEH9DZbpIYmF72gSaw_48x48.png", Active: true},
	{ID: 17, City: "NEW ENGLAND", Name: "PATRIOTS", Abbr: "NE", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/AC5-UEeN3V_fjkdFXtHWfQ_48x48.png", Active: true},
	{ID: 18, City: "NEW ORLEANS", Name: "SAINTS", Abbr: "NO", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/q8qdTYh-OWR5uO_QZxFENw_48x48.png", Active: true},
	{ID: 19, City: "NEW YORK", Name: "GIANTS", Abbr: "NYG", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/T4TxwDGkrCfTrL6Flg9ktQ_48x48.png", Active: true},
	{ID: 20, City: "NEW YORK", Name: "JETS", Abbr: "NYJ", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/QysqoqJQsTbiJl8sPL12Yg_48x48.png", Active: true},
	{ID: 21, City: "PHILADELPHIA", Name: "EAGLES", Abbr: "PHI", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/s4ab0JjXpDOespDSf9Z14Q_48x48.png", Active: true},
	{ID: 23, City: "PITTSBURGH", Name: "STEELERS", Abbr: "PIT", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/mdUFLAswQ4jZ6V7jXqaxig_48x48.png", Active: true},
	{ID: 25, City: "SAN FRANCISCO", Name: "49ERS", Abbr: "SF", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/ku3s7M4k5KMagYcFTCie_g_48x48.png", Active: true},
	{ID: 26, City: "SEATTLE", Name: "SEAHAWKS", Abbr: "SEA", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/iVPY42GLuHmD05DiOvNSVg_48x48.png", Active: true},
	{ID: 27, City: "TAMPA BAY", Name: "BUCCANEERS", Abbr: "TB", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/efP_3b5BgkGE-HMCHx4huQ_48x48.png", Active: true},
	{ID: 10, City: "TENNESSEE", Name: "TITANS", Abbr: "TEN", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/9J9dhhLeSa3syZ1bWXRjaw_48x48.png", Active: true},
	{ID: 28, City: "WASHINGTON", Name: "COMMANDERS", Abbr: "WSH", IconURL: "https://ssl.gstatic.com/onebox/media/sports/logos/o0CCwss-QfFnJaVdGIHFmQ_48x48.png", Active: true},
	{ID: 98, City: "UNDER", Name: "UNDER", Abbr: "UND", IconURL: "https://api.iconify.design/mdi/chevron-double-down.svg", Active: false},
	{ID: 99, City: "OVER", Name: "OVER", Abbr: "OVR", IconURL: "https://api.iconify.design/mdi/chevron-double-up.svg", Active: false},
}
